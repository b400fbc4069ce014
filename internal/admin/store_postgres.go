// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] values via [dberr.Wrap] so storage
// implementation details never leak past this layer.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new admin record into the admin_account table.
func (repository *PostgresRepository) Create(ctx context.Context, admin *Admin) error {
	const query = `
		INSERT INTO admin_account (
			id, username, passwordhash, mustchangepassword, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
		admin.MustChangePassword,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "Admin")
		}
		return fmt.Errorf("postgres_admin_repo_create_failed: %w", err)
	}

	return nil
}

// FindByUsername retrieves an admin record by its unique username.
//
// # Returns
//
// Returns [*Admin] if found, or [apperr.NotFound] if no record exists.
func (repository *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	const query = `
		SELECT id, username, passwordhash, mustchangepassword, createdat, updatedat
		FROM admin_account
		WHERE username = $1`

	admin := &Admin{}
	err := repository.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.MustChangePassword,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Admin")
	}

	return admin, nil
}

// FindByID retrieves an admin record by its store-assigned identifier.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Admin, error) {
	const query = `
		SELECT id, username, passwordhash, mustchangepassword, createdat, updatedat
		FROM admin_account
		WHERE id = $1`

	admin := &Admin{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.MustChangePassword,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Admin")
	}

	return admin, nil
}

// UpdatePassword updates only the password hash for a specific admin and
// clears the must-change-password flag.
func (repository *PostgresRepository) UpdatePassword(ctx context.Context, adminID, newHash string) error {
	const query = `
		UPDATE admin_account
		SET passwordhash = $2, mustchangepassword = FALSE, updatedat = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, adminID, newHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_admin_repo_update_password_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}

	return nil
}
