// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package admin

import (
	"context"
)

// Repository defines the data access contract for admin credential records.
//
// # Review Process
//
// This interface is placed in a separate file from admin.go so entity changes
// and storage-contract changes can be reviewed independently by the team.
//
// # Implementations
//
// The canonical implementation for Sentra is PostgreSQL (store_postgres.go).
type Repository interface {
	// FindByUsername returns the record with the given username (exact match).
	//
	// Returns [apperr.NotFound] if the username is unknown.
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	// FindByID returns the record with the given store-assigned identifier.
	// Used when an operation needs to re-resolve identity from a token
	// subject (e.g., changing the password).
	//
	// Returns [apperr.NotFound] if the record does not exist.
	FindByID(ctx context.Context, id string) (*Admin, error)

	// Create persists a brand-new admin record.
	//
	// Returns [apperr.Conflict] when the username already exists (enforced
	// by the unique constraint) and [apperr.Internal] on any other
	// persistence failure.
	Create(ctx context.Context, admin *Admin) error

	// UpdatePassword replaces the password hash and clears the
	// must-change-password flag. This is the only mutation the
	// authentication flow performs on an existing record.
	UpdatePassword(ctx context.Context, adminID, newHash string) error
}
