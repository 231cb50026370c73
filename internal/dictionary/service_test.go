// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package dictionary

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DianaShakirovaM/dictionary-api/internal/platform/apperr"
	"github.com/DianaShakirovaM/dictionary-api/pkg/pagination"
)

// # Test Doubles

// fakeRepository is an in-memory Repository mirroring the Postgres semantics:
// per-user translation uniqueness, owner scoping, newest-first ordering.
type fakeRepository struct {
	entries []*Entry
}

func (repository *fakeRepository) matchesFor(userID, search string) []*Entry {
	var matched []*Entry
	for _, entry := range repository.entries {
		if entry.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(entry.Text), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, entry)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func (repository *fakeRepository) List(_ context.Context, userID, search string, limit, offset int) ([]*Entry, int, error) {
	matched := repository.matchesFor(userID, search)

	// Mirror the Postgres store: the windowed total only exists on returned
	// rows, so an empty page past the last row falls back to a plain count.
	if offset >= len(matched) {
		total := 0
		if offset > 0 {
			total = len(matched)
		}
		return nil, total, nil
	}

	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], len(matched), nil
}

func (repository *fakeRepository) ListAll(_ context.Context, userID string) ([]*Entry, error) {
	return repository.matchesFor(userID, ""), nil
}

func (repository *fakeRepository) FindByID(_ context.Context, userID, id string) (*Entry, error) {
	for _, entry := range repository.entries {
		if entry.ID == id && entry.UserID == userID {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Translation")
}

func (repository *fakeRepository) Create(_ context.Context, entry *Entry) error {
	for _, existing := range repository.entries {
		if existing.UserID == entry.UserID && existing.Translation == entry.Translation {
			return apperr.Conflict("This translation is already in your dictionary")
		}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	repository.entries = append(repository.entries, entry)
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, updated *Entry) error {
	for _, existing := range repository.entries {
		if existing.UserID == updated.UserID && existing.Translation == updated.Translation && existing.ID != updated.ID {
			return apperr.Conflict("This translation is already in your dictionary")
		}
	}
	for i, existing := range repository.entries {
		if existing.ID == updated.ID && existing.UserID == updated.UserID {
			clone := *updated
			repository.entries[i] = &clone
			return nil
		}
	}
	return apperr.NotFound("Translation")
}

func (repository *fakeRepository) Delete(_ context.Context, userID, id string) error {
	for i, existing := range repository.entries {
		if existing.ID == id && existing.UserID == userID {
			repository.entries = append(repository.entries[:i], repository.entries[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Translation")
}

func (repository *fakeRepository) CountByUser(_ context.Context, userID string) (int, error) {
	count := 0
	for _, entry := range repository.entries {
		if entry.UserID == userID {
			count++
		}
	}
	return count, nil
}

// # Fixtures

func newTestDictionary(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := &fakeRepository{}
	return NewService(repository), repository
}

// seedEntries creates count entries for userID with strictly increasing
// creation times, so "word-<count-1>" is the newest.
func seedEntries(t *testing.T, service *Service, repository *fakeRepository, userID string, count int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		entry, err := service.Create(context.Background(), userID, CreateInput{
			Text:        fmt.Sprintf("word-%d", i),
			Translation: fmt.Sprintf("slovo-%d", i),
		})
		require.NoError(t, err)

		// Pin deterministic creation times for ordering assertions.
		for _, stored := range repository.entries {
			if stored.ID == entry.ID {
				stored.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			}
		}
	}
}

// # Creation

func TestService_Create_TrimsAndValidates(t *testing.T) {
	service, _ := newTestDictionary(t)

	entry, err := service.Create(context.Background(), "user-1", CreateInput{
		Text:        "  cat  ",
		Translation: " kot ",
	})

	require.NoError(t, err)
	assert.Equal(t, "cat", entry.Text)
	assert.Equal(t, "kot", entry.Translation)
	assert.NotEmpty(t, entry.ID)
}

func TestService_Create_RejectsMissingFields(t *testing.T) {
	service, _ := newTestDictionary(t)

	_, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat"})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_Create_DuplicateTranslationIsPerUser(t *testing.T) {
	service, _ := newTestDictionary(t)

	_, err := service.Create(context.Background(), "user-1", CreateInput{Text: "hello", Translation: "hola"})
	require.NoError(t, err)

	// Same user, same translation: conflict.
	_, err = service.Create(context.Background(), "user-1", CreateInput{Text: "hi", Translation: "hola"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// A different user may save the identical translation.
	_, err = service.Create(context.Background(), "user-2", CreateInput{Text: "hello", Translation: "hola"})
	assert.NoError(t, err)
}

// # Listing & Pagination

func TestService_List_LastPageHoldsRemainder(t *testing.T) {
	service, repository := newTestDictionary(t)
	seedEntries(t, service, repository, "user-1", 45)

	entries, meta, err := service.List(context.Background(), "user-1", "", pagination.Params{Page: 3, PerPage: 20})
	require.NoError(t, err)

	assert.Len(t, entries, 5) // 45 mod 20
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Nil(t, meta.NextPage)
}

func TestService_List_PageBeyondLastIsEmptyNotError(t *testing.T) {
	service, repository := newTestDictionary(t)
	seedEntries(t, service, repository, "user-1", 5)

	entries, meta, err := service.List(context.Background(), "user-1", "", pagination.Params{Page: 9, PerPage: 20})
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.NotNil(t, entries) // JSON must render [] rather than null
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestService_List_NewestFirst(t *testing.T) {
	service, repository := newTestDictionary(t)
	seedEntries(t, service, repository, "user-1", 3)

	entries, _, err := service.List(context.Background(), "user-1", "", pagination.Params{Page: 1, PerPage: 20})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "word-2", entries[0].Text)
	assert.Equal(t, "word-0", entries[2].Text)
}

func TestService_List_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	service, _ := newTestDictionary(t)

	_, err := service.Create(context.Background(), "user-1", CreateInput{Text: "Hello", Translation: "hola"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "user-1", CreateInput{Text: "goodbye", Translation: "adios"})
	require.NoError(t, err)

	entries, meta, err := service.List(context.Background(), "user-1", "hell", pagination.Params{Page: 1, PerPage: 20})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Hello", entries[0].Text)
	assert.Equal(t, 1, meta.Total)
}

func TestService_List_ScopedToOwner(t *testing.T) {
	service, _ := newTestDictionary(t)

	_, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	entries, meta, err := service.List(context.Background(), "user-2", "", pagination.Params{Page: 1, PerPage: 20})
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.Equal(t, 0, meta.Total)
}

// # Partial Update

func TestService_Update_TranslationOnlyLeavesTextUnchanged(t *testing.T) {
	service, _ := newTestDictionary(t)

	created, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	newTranslation := "gato"
	updated, err := service.Update(context.Background(), "user-1", created.ID, UpdateInput{
		Translation: &newTranslation,
	})
	require.NoError(t, err)

	assert.Equal(t, "cat", updated.Text)
	assert.Equal(t, "gato", updated.Translation)
}

func TestService_Update_RejectsBlankingAField(t *testing.T) {
	service, _ := newTestDictionary(t)

	created, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	blank := "   "
	_, err = service.Update(context.Background(), "user-1", created.ID, UpdateInput{Text: &blank})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_Update_ForeignEntryIsNotFound(t *testing.T) {
	service, _ := newTestDictionary(t)

	created, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	newText := "dog"
	_, err = service.Update(context.Background(), "user-2", created.ID, UpdateInput{Text: &newText})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Deletion

func TestService_Delete_ThenGetIsNotFound(t *testing.T) {
	service, _ := newTestDictionary(t)

	created, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), "user-1", created.ID))

	_, err = service.Get(context.Background(), "user-1", created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_Delete_ForeignEntryIsNotFound(t *testing.T) {
	service, _ := newTestDictionary(t)

	created, err := service.Create(context.Background(), "user-1", CreateInput{Text: "cat", Translation: "kot"})
	require.NoError(t, err)

	err = service.Delete(context.Background(), "user-2", created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
