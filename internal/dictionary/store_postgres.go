// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

// PostgreSQL implementation of the dictionary storage contract.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, unique violations) are mapped to
// domain-friendly [apperr.AppError] types via the dberr bridge.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/dberr"
)

// translationUniqueConstraint guards per-user translation uniqueness.
const translationUniqueConstraint = "translation_user_id_translation_key"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed entry store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Entry Retrieval

/*
List returns a filtered and paginated page of the user's entries.

Description: Uses ILIKE for case-insensitive search and COUNT(*) OVER() to
retrieve the total match count in the same round trip.

Parameters:
  - context: context.Context
  - userID: string
  - search: string ("" disables the filter)
  - limit: int
  - offset: int

Returns:
  - []*Entry: Slice of matching entries, newest first
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, userID, search string, limit, offset int) ([]*Entry, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			id, user_id, text, translation, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM translation
		WHERE user_id = $1
	`)

	args := []any{userID}
	argID := 2

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND text ILIKE $%d", argID))
		args = append(args, "%"+search+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_entries")
	}
	defer rows.Close()

	var entries []*Entry
	var total int
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Text, &entry.Translation,
			&entry.CreatedAt, &entry.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, entry)
	}

	// The window total only rides on returned rows. An offset past the last
	// row returns no rows at all, so count the matches separately to keep
	// the pagination metadata truthful.
	if len(entries) == 0 && offset > 0 {
		total, err = repository.countMatches(context, userID, search)
		if err != nil {
			return nil, 0, err
		}
	}

	return entries, total, nil
}

// countMatches counts the user's entries matching the search filter.
func (repository *PostgresRepository) countMatches(context context.Context, userID, search string) (int, error) {
	query := "SELECT COUNT(*) FROM translation WHERE user_id = $1"
	args := []any{userID}

	if search != "" {
		query += " AND text ILIKE $2"
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_entries")
	}

	return total, nil
}

/*
ListAll returns every entry owned by the user, newest first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Entry: All entries
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListAll(context context.Context, userID string) ([]*Entry, error) {
	const query = `
		SELECT id, user_id, text, translation, created_at, updated_at
		FROM translation
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_entries")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Text, &entry.Translation,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

/*
FindByID retrieves a single entry scoped to its owner.

Parameters:
  - context: context.Context
  - userID: string
  - id: string

Returns:
  - *Entry: Hydrated entity
  - error: apperr.NotFound for missing or foreign entries
*/
func (repository *PostgresRepository) FindByID(context context.Context, userID, id string) (*Entry, error) {
	const query = `
		SELECT id, user_id, text, translation, created_at, updated_at
		FROM translation
		WHERE id = $1 AND user_id = $2`

	entry := &Entry{}
	err := repository.pool.QueryRow(context, query, id, userID).Scan(
		&entry.ID, &entry.UserID, &entry.Text, &entry.Translation,
		&entry.CreatedAt, &entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Translation")
		}
		return nil, fmt.Errorf("postgres_entry_repo_find_failed: %w", err)
	}

	return entry, nil
}

// # Entry Mutation

/*
Create persists a new entry record.

Parameters:
  - context: context.Context
  - entry: *Entry

Returns:
  - error: apperr.Conflict if this user already saved the translation
*/
func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	const query = `
		INSERT INTO translation (
			id, user_id, text, translation, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		entry.ID,
		entry.UserID,
		entry.Text,
		entry.Translation,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err, translationUniqueConstraint) {
			return apperr.Conflict("This translation is already in your dictionary")
		}
		return fmt.Errorf("postgres_entry_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to an existing entry's text and translation.

Parameters:
  - context: context.Context
  - entry: *Entry

Returns:
  - error: apperr.NotFound, apperr.Conflict, or execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, entry *Entry) error {
	const query = `
		UPDATE translation
		SET text = $3, translation = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2`

	entry.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		entry.ID,
		entry.UserID,
		entry.Text,
		entry.Translation,
		entry.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err, translationUniqueConstraint) {
			return apperr.Conflict("This translation is already in your dictionary")
		}
		return fmt.Errorf("postgres_entry_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Translation")
	}

	return nil
}

/*
Delete removes the entry if the user owns it.

Parameters:
  - context: context.Context
  - userID: string
  - id: string

Returns:
  - error: apperr.NotFound for missing or foreign entries
*/
func (repository *PostgresRepository) Delete(context context.Context, userID, id string) error {
	const query = "DELETE FROM translation WHERE id = $1 AND user_id = $2"

	tag, err := repository.pool.Exec(context, query, id, userID)
	if err != nil {
		return fmt.Errorf("postgres_entry_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Translation")
	}

	return nil
}

/*
CountByUser returns the total number of entries the user owns.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - int: Entry count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) CountByUser(context context.Context, userID string) (int, error) {
	const query = "SELECT COUNT(*) FROM translation WHERE user_id = $1"

	var count int
	if err := repository.pool.QueryRow(context, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_entry_repo_count_failed: %w", err)
	}

	return count, nil
}
