// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

// Package admin defines the authenticated-principal domain of the Sentra
// backend: the admin credential records and the authentication flow built
// on top of them.
//
// # Architecture
//
// The entity in this file represents the "Truth" of the system. It has no
// dependencies on outer layers (like databases, APIs, or libraries), which
// keeps the core logic highly testable and resilient to technology changes.
package admin

import (
	"time"
)

// Admin represents the sole authenticated-principal entity in this system.
//
// # Rules
//   - Username is unique, 4–20 characters by validation policy.
//   - PasswordHash is generated via bcrypt exclusively via [Service].
//   - ID is the store-assigned identifier embedded as the subject of
//     issued tokens.
//   - Records are created out-of-band (cmd/provision), mutated only when
//     the password changes, and never deleted by this system's flows.
type Admin struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"` // Explicitly omitted from JSON for security.
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Field names used by validation and request decoding.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
