// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Package auth implements the user identity and account management layer.

It defines the core domain entity (User) and logic for authentication,
token issuance, and password recovery.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the dictionary service.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the public projection of a [User] returned by the "me" endpoint.
// WordsCount is derived from the user's dictionary, not stored on the account.
type Profile struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	WordsCount int       `json:"words_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// PublicProfile returns the transport-safe projection of the user.
func (user *User) PublicProfile(wordsCount int) *Profile {
	return &Profile{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		WordsCount: wordsCount,
		CreatedAt:  user.CreatedAt,
	}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldNewPassword  = "new_password"
	FieldToken        = "token"
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
	FieldTokenType    = "token_type"
	FieldExpiresIn    = "expires_in"
	FieldUser         = "user"
	FieldMessage      = "message"
)
