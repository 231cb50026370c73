// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Service layer of the identity and access management system.

It handles everything from user registration and secure password hashing to
stateless token issuance (access, refresh, reset) and password recovery.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Refresh, Recovery).
  - Repository: Abstracted interface for Postgres user storage.
  - Security: Leverages Bcrypt hashing and HMAC-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the service's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/DianaShakirovaM/dictionary-api/internal/notify"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/constants"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/ctxutil"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/sec"
	"github.com/DianaShakirovaM/dictionary-api/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating and verifying security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)

	// GenerateRefreshToken creates a signed long-lived JWT for the given user.
	GenerateRefreshToken(userID, username string, timeToLive time.Duration) (string, error)

	// VerifyRefreshToken parses a refresh token and returns its claims.
	// An access token presented here must be rejected.
	VerifyRefreshToken(tokenStr string) (*sec.AuthClaims, error)

	// GenerateResetToken creates a signed password-reset token bound to an email.
	GenerateResetToken(email string, timeToLive time.Duration) (string, error)

	// VerifyResetToken parses a reset token and returns the bound email.
	VerifyResetToken(tokenStr string) (string, error)
}

// WordCounter reports how many dictionary entries a user owns.
//
// # Why an interface?
//
// The "me" endpoint projects a words_count onto the profile, but the count
// lives in the dictionary domain. This interface keeps auth decoupled from
// the dictionary storage implementation.
type WordCounter interface {
	CountByUser(context context.Context, userID string) (int, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	wordCounter    WordCounter
	tokenProvider  TokenProvider
	mailer         notify.Sender
	publicBaseURL  string
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	wordCounter WordCounter,
	tokenProv TokenProvider,
	mailer notify.Sender,
	publicBaseURL string,
) *Service {
	return &Service{
		userRepository: userRepo,
		wordCounter:    wordCounter,
		tokenProvider:  tokenProv,
		mailer:         mailer,
		publicBaseURL:  publicBaseURL,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new member, handling password hashing and identity
conflict detection.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict error.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database. The unique constraints catch the
	// race between the checks above and this insert.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// TokenPair represents a successfully established set of credentials.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

/*
Login validates user credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
and mints a fresh access/refresh token pair.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *TokenPair: Transport-ready credentials
  - error: BadCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*TokenPair, error) {

	// Look up by email. Generic message on failure to prevent enumeration.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.BadCredentials()
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.BadCredentials()
	}

	// Generate short-lived Access Token
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Generate long-lived Refresh Token
	refreshToken, err := service.tokenProvider.GenerateRefreshToken(user.ID, user.Username, constants.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// # Token Management

/*
Refresh issues a new access token from a valid refresh token.

Description: Verifies the refresh token's signature, expiry, and type claim,
then mints a fresh access token for the bound user. The refresh token itself
is left untouched; it remains usable until it expires.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - string: New access token
  - error: Unauthorized or storage failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (string, error) {

	// Verify the refresh token. An access token presented here fails the
	// type-claim check inside the provider.
	claims, err := service.tokenProvider.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Confirm the account still exists before minting new credentials.
	user, err := service.userRepository.FindByID(context, claims.UserID)
	if err != nil {
		return "", apperr.Unauthorized("User no longer exists")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, constants.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_access_token_failed: %w", err)
	}

	return accessToken, nil
}

// # Password Recovery

/*
ForgotPassword initiates the forgot-password flow.

Description: Generates a signed reset token for the account and delivers it
via the configured mail backend.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Validation (unknown email), generation, or delivery errors
*/
func (service *Service) ForgotPassword(context context.Context, email string) error {

	// Look up the account. An unknown address is reported to the caller;
	// this API serves a personal dictionary, not a high-value target, and
	// the explicit error keeps the client UX simple.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return apperr.ValidationError("No account registered with this email")
	}

	// Mint a signed, self-expiring reset token bound to the email.
	token, err := service.tokenProvider.GenerateResetToken(user.Email, constants.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	resetURL := service.buildResetURL(token)

	if err := service.mailer.SendPasswordReset(context, user.Email, token, resetURL); err != nil {
		return fmt.Errorf("auth_service_send_reset_mail_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "password_reset_requested",
		slog.String("user_id", user.ID),
	)

	return nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Verifies the reset token, hashes the new password, and updates
the account record.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - error: Validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {

	// Resolve the token back into the email it was issued for.
	email, err := service.tokenProvider.VerifyResetToken(token)
	if err != nil {
		return apperr.ValidationError("Invalid or expired reset token")
	}

	// The account may have been removed since the token was issued.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return apperr.ValidationError("Invalid or expired reset token")
	}

	// Hash the new password securely
	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_password_hash_failed: %w", err)
	}

	// Update the user's password in persistent storage
	if err := service.userRepository.UpdatePassword(context, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "password_reset_completed",
		slog.String("user_id", user.ID),
	)

	return nil
}

// # Profile

/*
Me returns the public profile of the authenticated user.

Description: Resolves the account and decorates it with the number of
dictionary entries the user owns.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Profile: Transport-safe projection
  - error: NotFound or storage failures
*/
func (service *Service) Me(context context.Context, userID string) (*Profile, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	wordsCount, err := service.wordCounter.CountByUser(context, userID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_words_count_failed: %w", err)
	}

	return user.PublicProfile(wordsCount), nil
}

// buildResetURL composes the link embedded in reset mail.
func (service *Service) buildResetURL(token string) string {
	return service.publicBaseURL + "/api/auth/reset-password?token=" + url.QueryEscape(token)
}
