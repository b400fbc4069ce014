// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import "time"

// Article represents a single content document managed through the admin backend.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch holds the optional fields of a partial update. Nil means "leave unchanged".
type Patch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Field names for validation
const (
	FieldTitle   = "title"
	FieldContent = "content"
)
