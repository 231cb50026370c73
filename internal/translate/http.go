// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package translate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/DianaShakirovaM/dictionary-api/internal/platform/request"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/respond"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/validate"
)

// # Field Identifiers

const (
	// FieldText is the JSON identifier of the source text field.
	FieldText = "text"

	// FieldLangPair is the JSON identifier of the language pair field.
	FieldLangPair = "langpair"
)

// # Definitions & Constructors

// Handler implements the translation lookup HTTP endpoint.
type Handler struct {
	gateway *Gateway
}

// NewHandler constructs a new [Handler] with its gateway dependency.
func NewHandler(gateway *Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// Routes returns a [chi.Router] configured with the translation routes.
//
// # Endpoints
//   - POST / : Resolves a text/langpair lookup against the upstream service.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.translate)
	return router
}

// # Request Payloads

type translateRequest struct {
	Text     string `json:"text"`
	LangPair string `json:"langpair"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

/*
Translate resolves a one-off translation lookup.

POST /api/translate

Description: Validates the text and language pair, forwards them to the
external lookup service, and returns only the translated string. The
endpoint is public: a visitor may try translations before registering.

Request:
  - Body: translateRequest (Text, LangPair)

Response:
  - 200: translateResponse: The resolved translation
  - 400: ErrInvalidJSON: Bad input, validation failure, or upstream error
*/
func (handler *Handler) translate(writer http.ResponseWriter, request *http.Request) {
	var input translateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldText, input.Text).
		Required(FieldLangPair, input.LangPair)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	translation, err := handler.gateway.Translate(request.Context(), input.Text, input.LangPair)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, translateResponse{Translation: translation})
}
