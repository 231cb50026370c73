// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
HTTP delivery layer for the dictionary domain.

All routes in this handler require an authenticated user; the server mounts
them behind the RequireAuth middleware. Ownership scoping happens in the
service layer using the user ID extracted from the access token.
*/
package dictionary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/DianaShakirovaM/dictionary-api/internal/platform/request"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/respond"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/validate"
	"github.com/DianaShakirovaM/dictionary-api/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements dictionary-related HTTP endpoints.
type Handler struct {
	dictionaryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{dictionaryService: service}
}

// Routes returns a [chi.Router] with entry CRUD routes, mounted at /dictionary.
//
// # Endpoints
//   - GET    /          : Paginated, searchable listing.
//   - POST   /          : Creates a new entry.
//   - GET    /{id}      : Returns a single entry.
//   - PATCH  /{id}      : Partially updates an entry.
//   - DELETE /{id}      : Removes an entry.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type createEntryRequest struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

type updateEntryRequest struct {
	Text        *string `json:"text"`
	Translation *string `json:"translation"`
}

/*
List returns a page of the user's dictionary.

GET /api/dictionary?q=&page=&per_page=

Description: Lists entries newest first, optionally filtered by a
case-insensitive substring match on the source text.

Response:
  - 200: PaginatedEnvelope: Entries plus pagination metadata
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	search := request.URL.Query().Get(FieldQuery)

	entries, meta, err := handler.dictionaryService.List(request.Context(), userID, search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, meta)
}

/*
Create saves a new text/translation pair.

POST /api/dictionary

Request:
  - Body: createEntryRequest (Text, Translation)

Response:
  - 201: Entry: Created entry
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Translation already saved by this user
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entry, err := handler.dictionaryService.Create(request.Context(), userID, CreateInput{
		Text:        input.Text,
		Translation: input.Translation,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Get returns a single entry.

GET /api/dictionary/{id}

Response:
  - 200: Entry: The requested entry
  - 404: ErrNotFound: Missing or owned by another user
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.dictionaryService.Get(request.Context(), userID, requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Update partially updates an entry.

PATCH /api/dictionary/{id}

Description: Absent fields keep their current values.

Request:
  - Body: updateEntryRequest (Text?, Translation?)

Response:
  - 200: Entry: The updated entry
  - 400: ErrInvalidJSON: Validation failure
  - 404: ErrNotFound: Missing or owned by another user
  - 409: ErrConflict: Translation already saved by this user
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entry, err := handler.dictionaryService.Update(request.Context(), userID, requestutil.Param(request, FieldID), UpdateInput{
		Text:        input.Text,
		Translation: input.Translation,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Remove deletes an entry.

DELETE /api/dictionary/{id}

Response:
  - 204: No Content: Entry removed
  - 404: ErrNotFound: Missing or owned by another user
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.dictionaryService.Delete(request.Context(), userID, requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Download streams the user's entire dictionary as a text attachment.

GET /api/dictionary-download

Response:
  - 200: text/plain attachment named my_dictionary.txt
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) Download(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.dictionaryService.Export(request.Context(), claims.UserID, claims.Username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Attachment(writer, ExportFilename, document)
}
