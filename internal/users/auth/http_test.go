// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package auth

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # Password Recovery Endpoint

func TestHandler_ForgotPassword_EmptyBodyOnSuccess(t *testing.T) {
	service, _, mailer := newTestService(t)
	registerTestUser(t, service)

	handler := NewHandler(service)
	router := handler.Routes()

	request := httptest.NewRequest("POST", "/forgot-password",
		strings.NewReader(`{"email":"alice@example.com"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, 200, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	// The token travels only through the mail channel.
	require.NotEmpty(t, mailer.resetToken)
	assert.Equal(t, "alice@example.com", mailer.toEmail)
}

func TestHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	service, _, mailer := newTestService(t)

	handler := NewHandler(service)
	router := handler.Routes()

	request := httptest.NewRequest("POST", "/forgot-password",
		strings.NewReader(`{"email":"nobody@example.com"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, 400, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, mailer.resetToken)
}
