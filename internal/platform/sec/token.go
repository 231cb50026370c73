// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Token types
//
// Every token this service mints carries a "type" claim so that a token
// issued for one purpose can never be replayed for another. Access and
// refresh tokens share the primary signing secret; password-reset tokens
// are signed with the secret concatenated with a dedicated salt, so a
// salt rotation invalidates outstanding reset links without touching
// live sessions.

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

var (
	ErrInvalidToken   = errors.New("sec: invalid or expired token")
	ErrWrongTokenType = errors.New("sec: token used for the wrong purpose")
)

// AuthClaims are the JWT claims embedded in access and refresh tokens.
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Username  string `json:"unm"`
	TokenType string `json:"typ"`
}

// resetClaims are the JWT claims embedded in password-reset tokens.
// The subject holds the account email.
type resetClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// TokenService issues and verifies the HMAC-signed tokens used by the
// authentication flows.
type TokenService struct {
	signingSecret []byte
	resetSecret   []byte
	issuer        string
}

/*
NewTokenService creates a TokenService.

# Parameters
  - signingSecret: shared secret for access and refresh tokens.
  - resetSalt: appended to the signing secret to derive the reset-token key.
  - issuer: value of the "iss" claim on every minted token.

# Returns
  - *TokenService: the configured service.
  - error: if the signing secret is empty.
*/
func NewTokenService(signingSecret, resetSalt, issuer string) (*TokenService, error) {
	if signingSecret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		signingSecret: []byte(signingSecret),
		resetSecret:   []byte(signingSecret + resetSalt),
		issuer:        issuer,
	}, nil
}

/*
GenerateAccessToken mints a short-lived access token for a user.

# Parameters
  - userID: identifier of the authenticated user.
  - username: display name embedded for convenience.
  - timeToLive: validity window of the token.

# Returns
  - string: the signed compact JWT.
  - error: if signing fails.
*/
func (service *TokenService) GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error) {
	return service.generateAuthToken(userID, username, TokenTypeAccess, timeToLive)
}

/*
GenerateRefreshToken mints a long-lived refresh token for a user.

# Parameters
  - userID: identifier of the authenticated user.
  - username: display name embedded for convenience.
  - timeToLive: validity window of the token.

# Returns
  - string: the signed compact JWT.
  - error: if signing fails.
*/
func (service *TokenService) GenerateRefreshToken(userID, username string, timeToLive time.Duration) (string, error) {
	return service.generateAuthToken(userID, username, TokenTypeRefresh, timeToLive)
}

func (service *TokenService) generateAuthToken(userID, username, tokenType string, timeToLive time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeToLive)),
		},
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.signingSecret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// VerifyAccessToken parses and validates an access token.
// A structurally valid refresh token is rejected with ErrWrongTokenType.
func (service *TokenService) VerifyAccessToken(tokenString string) (*AuthClaims, error) {
	return service.verifyAuthToken(tokenString, TokenTypeAccess)
}

// VerifyRefreshToken parses and validates a refresh token.
// A structurally valid access token is rejected with ErrWrongTokenType.
func (service *TokenService) VerifyRefreshToken(tokenString string) (*AuthClaims, error) {
	return service.verifyAuthToken(tokenString, TokenTypeRefresh)
}

func (service *TokenService) verifyAuthToken(tokenString, wantType string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %q", token.Header["alg"])
		}
		return service.signingSecret, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

/*
GenerateResetToken mints a password-reset token bound to an email address.

# Parameters
  - email: the account email the reset is issued for.
  - timeToLive: validity window of the token.

# Returns
  - string: the signed compact JWT.
  - error: if signing fails.
*/
func (service *TokenService) GenerateResetToken(email string, timeToLive time.Duration) (string, error) {
	now := time.Now()
	claims := resetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeToLive)),
		},
		TokenType: TokenTypeReset,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.resetSecret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign reset token: %w", err)
	}
	return signed, nil
}

/*
VerifyResetToken parses and validates a password-reset token.

# Parameters
  - tokenString: the compact JWT from the reset link.

# Returns
  - string: the email address the token was issued for.
  - error: ErrInvalidToken or ErrWrongTokenType on failure.
*/
func (service *TokenService) VerifyResetToken(tokenString string) (string, error) {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %q", token.Header["alg"])
		}
		return service.resetSecret, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != TokenTypeReset {
		return "", ErrWrongTokenType
	}
	return claims.Subject, nil
}
