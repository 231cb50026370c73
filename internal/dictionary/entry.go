// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Package dictionary implements the personal vocabulary book of each user.

It defines the Entry domain entity and logic for creating, searching,
paginating, updating, deleting, and exporting saved translations.

# Architecture

Every operation in this package is scoped to the owning user. An entry is
never visible to, or mutable by, anyone but its owner; cross-user access
surfaces as a plain NotFound so the existence of foreign entries is not
revealed.
*/
package dictionary

import "time"

// # Domain Entities

// Entry represents a single saved text/translation pair.
type Entry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"` // Ownership is implied by the authenticated route.
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation in the dictionary domain.
const (
	FieldText        = "text"
	FieldTranslation = "translation"
	FieldID          = "id"
	FieldQuery       = "q"
)

// MaxTextLength bounds both the source text and its translation.
const MaxTextLength = 255
