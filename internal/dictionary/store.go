// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package dictionary

import "context"

// # Entry Data Access

// Repository defines the data access contract for dictionary entries.
//
// All lookups are scoped by userID: an entry owned by another user behaves
// exactly like a missing entry.
type Repository interface {

	/*
		List returns a page of the user's entries, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - search: Optional case-insensitive substring filter on the text column ("" disables it)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Entry: Matching page of entries
		  - int: Total match count across all pages
		  - error: Database retrieval failures
	*/
	List(context context.Context, userID, search string, limit, offset int) ([]*Entry, int, error)

	/*
		ListAll returns every entry owned by the user, newest first.
		Used by the export flow, which is never paginated.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Entry: All entries
		  - error: Database retrieval failures
	*/
	ListAll(context context.Context, userID string) ([]*Entry, error)

	/*
		FindByID returns the entry with the given ID if the user owns it.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - id: string

		Returns:
		  - *Entry: Hydrated entity
		  - error: apperr.NotFound for missing or foreign entries
	*/
	FindByID(context context.Context, userID, id string) (*Entry, error)

	/*
		Create persists a new entry.

		Parameters:
		  - context: context.Context
		  - entry: *Entry

		Returns:
		  - error: apperr.Conflict if the translation already exists for this user
	*/
	Create(context context.Context, entry *Entry) error

	/*
		Update persists changes to an existing entry's text and translation.

		Parameters:
		  - context: context.Context
		  - entry: *Entry

		Returns:
		  - error: apperr.NotFound or apperr.Conflict on duplicate translation
	*/
	Update(context context.Context, entry *Entry) error

	/*
		Delete removes the entry if the user owns it.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - id: string

		Returns:
		  - error: apperr.NotFound for missing or foreign entries
	*/
	Delete(context context.Context, userID, id string) error

	/*
		CountByUser returns the total number of entries the user owns.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - int: Entry count
		  - error: Database retrieval failures
	*/
	CountByUser(context context.Context, userID string) (int, error)
}
