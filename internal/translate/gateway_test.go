// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package translate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
)

func newTestGateway(t *testing.T, upstream http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGateway(server.URL, logger), server
}

func TestGateway_Translate_Success(t *testing.T) {
	gateway, _ := newTestGateway(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "hello", request.URL.Query().Get("q"))
		assert.Equal(t, "en|ru", request.URL.Query().Get("langpair"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"responseData":{"translatedText":"привет"}}`))
	})

	translation, err := gateway.Translate(context.Background(), "hello", "en|ru")

	require.NoError(t, err)
	assert.Equal(t, "привет", translation)
}

func TestGateway_Translate_NetworkError(t *testing.T) {
	gateway, server := newTestGateway(t, func(http.ResponseWriter, *http.Request) {})
	server.Close() // nothing is listening anymore

	_, err := gateway.Translate(context.Background(), "hello", "en|ru")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UPSTREAM_ERROR", appError.Code)
	assert.Equal(t, "Network error connecting to translation service", appError.Message)
}

func TestGateway_Translate_UpstreamUnavailable(t *testing.T) {
	gateway, _ := newTestGateway(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := gateway.Translate(context.Background(), "hello", "en|ru")

	require.Error(t, err)
	assert.Equal(t, "Translation service unavailable", apperr.As(err).Message)
}

func TestGateway_Translate_MalformedBody(t *testing.T) {
	gateway, _ := newTestGateway(t, func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"unexpected":"shape"}`))
	})

	_, err := gateway.Translate(context.Background(), "hello", "en|ru")

	require.Error(t, err)
	assert.Equal(t, "Invalid response format from translation service", apperr.As(err).Message)
}

func TestGateway_Translate_MissingTranslatedText(t *testing.T) {
	gateway, _ := newTestGateway(t, func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"responseData":{"match":1}}`))
	})

	_, err := gateway.Translate(context.Background(), "hello", "en|ru")

	require.Error(t, err)
	assert.Equal(t, "Translation not found in response", apperr.As(err).Message)
}
