// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Service layer for the dictionary domain.

Architecture:

  - Service: Orchestrates business logic (validation, ownership scoping).
  - Repository: Abstracted interface for Postgres entry storage.

Every operation takes the owner's userID explicitly; the service never
trusts IDs embedded in payloads for ownership decisions.
*/
package dictionary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/ctxutil"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/validate"
	"github.com/DianaShakirovaM/dictionary-api/pkg/pagination"
	"github.com/DianaShakirovaM/dictionary-api/pkg/uuid"
)

// Service implements dictionary use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new dictionary [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Listing & Search

/*
List returns a page of the user's entries, optionally filtered by a
case-insensitive substring match on the source text.

Parameters:
  - context: context.Context
  - userID: string
  - search: string ("" disables the filter)
  - params: pagination.Params

Returns:
  - []*Entry: The requested page, newest first
  - pagination.Meta: Metadata describing the full result set
  - error: Storage failures
*/
func (service *Service) List(context context.Context, userID, search string, params pagination.Params) ([]*Entry, pagination.Meta, error) {
	entries, total, err := service.repository.List(context, userID, strings.TrimSpace(search), params.PerPage, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	// A page beyond the last one yields an empty slice, not an error.
	if entries == nil {
		entries = []*Entry{}
	}

	return entries, pagination.NewMeta(params.Page, params.PerPage, total), nil
}

/*
Get returns a single entry owned by the user.

Parameters:
  - context: context.Context
  - userID: string
  - entryID: string

Returns:
  - *Entry: Hydrated entity
  - error: apperr.NotFound for missing or foreign entries
*/
func (service *Service) Get(context context.Context, userID, entryID string) (*Entry, error) {
	return service.repository.FindByID(context, userID, entryID)
}

// # Mutation

// CreateInput holds the data required to save a new entry.
type CreateInput struct {
	Text        string
	Translation string
}

/*
Create validates and persists a new entry for the user.

Parameters:
  - context: context.Context
  - userID: string
  - input: CreateInput

Returns:
  - *Entry: Created entity
  - error: Validation, Conflict (duplicate translation), or storage errors
*/
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*Entry, error) {
	text := strings.TrimSpace(input.Text)
	translation := strings.TrimSpace(input.Translation)

	validator := &validate.Validator{}
	validator.Required(FieldText, text).
		MaxLen(FieldText, text, MaxTextLength).
		Required(FieldTranslation, translation).
		MaxLen(FieldTranslation, translation, MaxTextLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Text:        text,
		Translation: translation,
	}

	if err := service.repository.Create(context, entry); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "entry_created",
		slog.String("entry_id", entry.ID),
		slog.String("user_id", userID),
	)

	return entry, nil
}

// UpdateInput holds the partial-update payload. Nil fields are left unchanged.
type UpdateInput struct {
	Text        *string
	Translation *string
}

/*
Update applies a partial update to an entry owned by the user.

Description: Fields absent from the payload keep their current value. A
provided field still has to pass the same validation rules as on create.

Parameters:
  - context: context.Context
  - userID: string
  - entryID: string
  - input: UpdateInput

Returns:
  - *Entry: The updated entity
  - error: NotFound, Validation, Conflict, or storage errors
*/
func (service *Service) Update(context context.Context, userID, entryID string, input UpdateInput) (*Entry, error) {
	entry, err := service.repository.FindByID(context, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		entry.Text = strings.TrimSpace(*input.Text)
	}
	if input.Translation != nil {
		entry.Translation = strings.TrimSpace(*input.Translation)
	}

	validator := &validate.Validator{}
	validator.Required(FieldText, entry.Text).
		MaxLen(FieldText, entry.Text, MaxTextLength).
		Required(FieldTranslation, entry.Translation).
		MaxLen(FieldTranslation, entry.Translation, MaxTextLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Delete removes an entry owned by the user.

Parameters:
  - context: context.Context
  - userID: string
  - entryID: string

Returns:
  - error: apperr.NotFound for missing or foreign entries
*/
func (service *Service) Delete(context context.Context, userID, entryID string) error {
	if err := service.repository.Delete(context, userID, entryID); err != nil {
		return err
	}

	ctxutil.GetLogger(context).InfoContext(context, "entry_deleted",
		slog.String("entry_id", entryID),
		slog.String("user_id", userID),
	)

	return nil
}
