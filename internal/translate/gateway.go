// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Package translate integrates the external translation lookup service.

# Architecture

The gateway is a thin synchronous HTTP client around the MyMemory-compatible
lookup endpoint. Each call maps to exactly one upstream GET request; there is
no caching, no retry, and no circuit breaking at this layer. Failures are
normalized into the application error taxonomy so the delivery layer never
inspects raw transport errors.
*/
package translate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
)

// # Definitions & Constructors

// upstreamTimeout bounds a single translation lookup. A hung upstream must
// not hold the calling request past this deadline.
const upstreamTimeout = 10 * time.Second

// responsePayload mirrors the subset of the upstream JSON body we consume.
type responsePayload struct {
	ResponseData *struct {
		TranslatedText *string `json:"translatedText"`
	} `json:"responseData"`
}

// Gateway performs translation lookups against an external HTTP service.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewGateway constructs a [Gateway] targeting the given lookup endpoint.
func NewGateway(baseURL string, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: upstreamTimeout,
		},
		logger: logger,
	}
}

// # Lookup

/*
Translate resolves text into the target language of langPair.

Description: Issues a single GET request to the upstream lookup service with
the text and language pair as query parameters, then extracts the translated
string from the nested response body. Errors carry distinct messages so the
caller can tell a transport failure from a malformed upstream body.

Parameters:
  - ctx: context.Context for cancellation and deadlines
  - text: Source text to translate
  - langPair: Source/target code pair, e.g. "en|ru"

Returns:
  - string: The translated text
  - error: An UPSTREAM_ERROR [apperr.AppError] describing the failure
*/
func (gateway *Gateway) Translate(ctx context.Context, text, langPair string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", langPair)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, gateway.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", apperr.Upstream("Network error connecting to translation service", err)
	}

	response, err := gateway.client.Do(request)
	if err != nil {
		gateway.logger.Warn("translation_request_failed", slog.String("error", err.Error()))
		return "", apperr.Upstream("Network error connecting to translation service", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		gateway.logger.Warn("translation_bad_status", slog.Int("status", response.StatusCode))
		return "", apperr.Upstream("Translation service unavailable", nil)
	}

	var payload responsePayload
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil || payload.ResponseData == nil {
		return "", apperr.Upstream("Invalid response format from translation service", err)
	}
	if payload.ResponseData.TranslatedText == nil {
		return "", apperr.Upstream("Translation not found in response", nil)
	}

	gateway.logger.Debug("translation_resolved", slog.String("langpair", langPair))
	return *payload.ResponseData.TranslatedText, nil
}
