// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/constants"
	"github.com/sentra-hq/sentra/internal/platform/sec"
	"github.com/sentra-hq/sentra/internal/platform/validate"
	"github.com/sentra-hq/sentra/pkg/uuidv7"
)

// TokenIssuer defines the contract for generating signed access tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT string for the given admin.
	//
	// # Parameters
	//   - adminID: The store-assigned identifier (token subject).
	//   - username: The admin's username.
	//   - mustChangePassword: Carried as an extra claim so clients can
	//     prompt for a password change without an extra round trip.
	Issue(adminID, username string, mustChangePassword bool) (string, error)
}

// Service implements the admin authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// token issuance logic must be reviewed by the security team.
type Service struct {
	repository Repository
	tokens     TokenIssuer
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		tokens:     tokens,
		logger:     logger,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username   string
	Password   string
	RememberMe bool
}

// Session represents a successfully established admin session: the signed
// token plus the cookie policy the transport layer should apply.
type Session struct {
	// Token is the signed JWT proving the successful login.
	Token string

	// CookieMaxAge is the Max-Age (in seconds) for the access token cookie.
	// Zero means a browser-session cookie; it is set to one day when the
	// login requested "remember me". The token's signed expiry is
	// independent of this value.
	CookieMaxAge int

	// Admin is the authenticated record (hash included, never serialized).
	Admin *Admin
}

// Login validates admin credentials and issues an access token.
//
// # Flow
//  1. Look up the credential record by username.
//  2. Verify the password against the stored bcrypt hash.
//  3. Issue a token with subject = record ID plus the username and
//     must-change-password claims.
//  4. Compute the cookie policy for the transport layer.
//
// Both an unknown username and a wrong password fail with the same generic
// [apperr.InvalidCredentials] so responses cannot be used to enumerate
// accounts. No token is issued on any failure path.
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	// ── 1. Fetch Credential Record ────────────────────────────────────────

	record, err := service.repository.FindByUsername(ctx, input.Username)
	if err != nil {
		// Only an unknown username folds into the generic credential failure.
		// Persistence errors keep their identity so they surface as 500 and
		// get logged with their cause.
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			return nil, apperr.InvalidCredentials()
		}
		return nil, err
	}

	// ── 2. Password Verification ──────────────────────────────────────────

	if !sec.CheckPasswordHash(input.Password, record.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokens.Issue(record.ID, record.Username, record.MustChangePassword)
	if err != nil {
		return nil, fmt.Errorf("admin_service_token_issue_failed: %w", err)
	}

	// ── 4. Cookie Policy ──────────────────────────────────────────────────

	cookieMaxAge := 0
	if input.RememberMe {
		cookieMaxAge = constants.RememberMeCookieMaxAge
	}

	service.logger.Info("admin_login_succeeded",
		slog.String("admin_id", record.ID),
		slog.Bool("remember_me", input.RememberMe),
	)

	return &Session{
		Token:        token,
		CookieMaxAge: cookieMaxAge,
		Admin:        record,
	}, nil
}

// Provision creates a new admin record from plain-text credentials.
//
// It is consumed only by the out-of-band provisioning command — the live
// HTTP surface exposes no account-creation endpoint.
//
// # Returns
//   - The newly created [*Admin].
//   - [apperr.Conflict] if the username already exists.
func (service *Service) Provision(ctx context.Context, username, password string) (*Admin, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, constants.UsernameMinLen).
		MaxLen(FieldUsername, username, constants.UsernameMaxLen).
		Required(FieldPassword, password).
		MinLen(FieldPassword, password, constants.PasswordMinLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Prevent storing plain-text passwords. The bcrypt default cost balances
	// brute-force resistance against provisioning latency.
	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("admin_service_hash_failed: %w", err)
	}

	record := &Admin{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := service.repository.Create(ctx, record); err != nil {
		return nil, err
	}

	service.logger.Info("admin_provisioned", slog.String("admin_id", record.ID))
	return record, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
//
// The record is re-resolved by the token subject to guarantee the mutation
// targets the account the caller actually authenticated as.
func (service *Service) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, currentPassword).
		Required(FieldNewPassword, newPassword).
		MinLen(FieldNewPassword, newPassword, constants.PasswordMinLen)

	if err := validator.Err(); err != nil {
		return err
	}

	record, err := service.repository.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, record.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	newHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("admin_service_hash_failed: %w", err)
	}

	if err := service.repository.UpdatePassword(ctx, record.ID, newHash); err != nil {
		return err
	}

	service.logger.Info("admin_password_changed", slog.String("admin_id", record.ID))
	return nil
}
