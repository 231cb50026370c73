// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/sec"
)

// # Test Doubles

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	users map[string]*User // keyed by ID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*User)}
}

func (repository *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	user, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repository *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range repository.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, user := range repository.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) Create(_ context.Context, user *User) error {
	repository.users[user.ID] = user
	return nil
}

func (repository *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := repository.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	return nil
}

// fakeWordCounter returns a fixed count.
type fakeWordCounter struct {
	count int
}

func (counter *fakeWordCounter) CountByUser(_ context.Context, _ string) (int, error) {
	return counter.count, nil
}

// recordingMailer captures the last reset mail instead of delivering it.
type recordingMailer struct {
	toEmail    string
	resetToken string
	resetURL   string
}

func (mailer *recordingMailer) SendPasswordReset(_ context.Context, toEmail, resetToken, resetURL string) error {
	mailer.toEmail = toEmail
	mailer.resetToken = resetToken
	mailer.resetURL = resetURL
	return nil
}

// # Fixtures

func newTestService(t *testing.T) (*Service, *fakeUserRepository, *recordingMailer) {
	t.Helper()

	tokens, err := sec.NewTokenService("test-signing-secret", "test-reset-salt", "dictionary-api")
	require.NoError(t, err)

	repository := newFakeUserRepository()
	mailer := &recordingMailer{}
	service := NewService(repository, &fakeWordCounter{count: 3}, tokens, mailer, "http://localhost:8080")

	return service, repository, mailer
}

func registerTestUser(t *testing.T, service *Service) *User {
	t.Helper()

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return user
}

// # Registration

func TestService_Register_HashesPassword(t *testing.T) {
	service, repository, _ := newTestService(t)

	user := registerTestUser(t, service)

	stored := repository.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse", stored.PasswordHash))
}

func TestService_Register_DuplicateEmailConflicts(t *testing.T) {
	service, _, _ := newTestService(t)
	registerTestUser(t, service)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "another",
		Email:    "alice@example.com",
		Password: "whatever-pass",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

func TestService_Register_DuplicateUsernameConflicts(t *testing.T) {
	service, _, _ := newTestService(t)
	registerTestUser(t, service)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "whatever-pass",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

// # Login

func TestService_Login_IssuesTokenPair(t *testing.T) {
	service, _, _ := newTestService(t)
	user := registerTestUser(t, service)

	pair, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, user.ID, pair.User.ID)
}

func TestService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	service, _, _ := newTestService(t)
	registerTestUser(t, service)

	_, unknownErr := service.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	_, wrongErr := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	// The two failures must be indistinguishable to prevent enumeration.
	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, "Invalid email or password", wrongAE.Message)
	assert.Equal(t, unknownAE.HTTPStatus, wrongAE.HTTPStatus)
}

// # Refresh

func TestService_Refresh_MintsNewAccessToken(t *testing.T) {
	service, _, _ := newTestService(t)
	registerTestUser(t, service)

	pair, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	accessToken, err := service.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestService_Refresh_RejectsAccessToken(t *testing.T) {
	service, _, _ := newTestService(t)
	registerTestUser(t, service)

	pair, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// An access token must not be accepted at the refresh endpoint.
	_, err = service.Refresh(context.Background(), pair.AccessToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

func TestService_Refresh_RejectsGarbage(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

// # Password Recovery

func TestService_ForgotPassword_DeliversUsableResetToken(t *testing.T) {
	service, repository, mailer := newTestService(t)
	user := registerTestUser(t, service)

	err := service.ForgotPassword(context.Background(), "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", mailer.toEmail)
	assert.NotEmpty(t, mailer.resetToken)
	assert.Contains(t, mailer.resetURL, "/api/auth/reset-password?token=")

	// Complete the flow with the delivered token.
	err = service.ResetPassword(context.Background(), mailer.resetToken, "brand-new-pass")
	require.NoError(t, err)

	stored := repository.users[user.ID]
	assert.True(t, sec.CheckPasswordHash("brand-new-pass", stored.PasswordHash))
	assert.False(t, sec.CheckPasswordHash("correct-horse", stored.PasswordHash))
}

func TestService_ForgotPassword_UnknownEmailFails(t *testing.T) {
	service, _, _ := newTestService(t)

	err := service.ForgotPassword(context.Background(), "ghost@example.com")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_ResetPassword_RejectsTamperedToken(t *testing.T) {
	service, _, mailer := newTestService(t)
	registerTestUser(t, service)

	require.NoError(t, service.ForgotPassword(context.Background(), "alice@example.com"))

	err := service.ResetPassword(context.Background(), mailer.resetToken+"x", "brand-new-pass")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

// # Profile

func TestService_Me_IncludesWordsCount(t *testing.T) {
	service, _, _ := newTestService(t)
	user := registerTestUser(t, service)

	profile, err := service.Me(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, 3, profile.WordsCount)
}

func TestService_Me_UnknownUserNotFound(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Me(context.Background(), "missing-id")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
