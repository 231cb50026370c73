// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DianaShakirovaM/dictionary-api/pkg/pagination"
)

/*
TestFromRequest_Defaults verifies fallback behavior for absent or invalid params.
*/
func TestFromRequest_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"no_params", "", 1, 20},
		{"explicit", "?page=3&per_page=50", 3, 50},
		{"zero_page", "?page=0", 1, 20},
		{"negative_page", "?page=-2", 1, 20},
		{"non_numeric", "?page=abc&per_page=xyz", 1, 20},
		{"per_page_clamped_to_max", "?per_page=150", 1, 100},
		{"per_page_at_max", "?per_page=100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/dictionary"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}

/*
TestParams_Offset verifies SQL offset calculation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, PerPage: 20}.Offset())
	assert.Equal(t, 90, pagination.Params{Page: 10, PerPage: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, PerPage: 20}.Offset())
}

/*
TestNewMeta verifies total page calculation and navigation pointers.
*/
func TestNewMeta(t *testing.T) {
	t.Run("middle_page", func(t *testing.T) {
		meta := pagination.NewMeta(2, 20, 45)

		assert.Equal(t, 3, meta.TotalPages)
		assert.NotNil(t, meta.NextPage)
		assert.Equal(t, 3, *meta.NextPage)
		assert.NotNil(t, meta.PrevPage)
		assert.Equal(t, 1, *meta.PrevPage)
	})

	t.Run("first_page", func(t *testing.T) {
		meta := pagination.NewMeta(1, 20, 45)

		assert.Nil(t, meta.PrevPage)
		assert.NotNil(t, meta.NextPage)
	})

	t.Run("last_page", func(t *testing.T) {
		meta := pagination.NewMeta(3, 20, 45)

		assert.Nil(t, meta.NextPage)
		assert.NotNil(t, meta.PrevPage)
	})

	t.Run("empty_result", func(t *testing.T) {
		meta := pagination.NewMeta(1, 20, 0)

		assert.Equal(t, 0, meta.TotalPages)
		assert.Nil(t, meta.NextPage)
		assert.Nil(t, meta.PrevPage)
	})
}
