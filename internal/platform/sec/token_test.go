// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package sec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	service, err := NewTokenService("test-signing-secret", "test-reset-salt", "dictionary-api")
	require.NoError(t, err)
	return service
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	signed, err := service.GenerateAccessToken("user-123", "alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := service.VerifyAccessToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "dictionary-api", claims.Issuer)
}

func TestTokenService_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	service := newTestTokenService(t)

	signed, err := service.GenerateRefreshToken("user-123", "alice", time.Hour)
	require.NoError(t, err)

	_, err = service.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := service.VerifyRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenService_AccessTokenIsNotARefreshToken(t *testing.T) {
	service := newTestTokenService(t)

	signed, err := service.GenerateAccessToken("user-123", "alice", time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyRefreshToken(signed)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenService_ExpiredTokenIsRejected(t *testing.T) {
	service := newTestTokenService(t)

	signed, err := service.GenerateAccessToken("user-123", "alice", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedSecretIsRejected(t *testing.T) {
	service := newTestTokenService(t)
	other, err := NewTokenService("another-signing-secret", "test-reset-salt", "dictionary-api")
	require.NoError(t, err)

	signed, err := service.GenerateAccessToken("user-123", "alice", time.Minute)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ResetTokenRoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	signed, err := service.GenerateResetToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	email, err := service.VerifyResetToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestTokenService_ResetTokenUsesDedicatedKey(t *testing.T) {
	service := newTestTokenService(t)

	// An access token must never pass reset verification: the key
	// material differs and so does the type claim.
	signed, err := service.GenerateAccessToken("user-123", "alice", time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyResetToken(signed)
	assert.Error(t, err)

	// Rotating the salt invalidates previously issued reset tokens.
	rotated, err := NewTokenService("test-signing-secret", "rotated-salt", "dictionary-api")
	require.NoError(t, err)

	reset, err := service.GenerateResetToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = rotated.VerifyResetToken(reset)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", "salt", "dictionary-api")
	assert.Error(t, err)
}
