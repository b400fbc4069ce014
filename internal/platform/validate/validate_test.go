// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Sentra", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Length checks the MinLen/MaxLen rules against rune counts.
*/
func TestValidator_Length(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		min      int
		max      int
		hasError bool
	}{
		{"within_bounds", "admin", 4, 20, false},
		{"at_min_boundary", "root", 4, 20, false},
		{"below_min", "abc", 4, 20, true},
		{"above_max", "this-username-is-way-too-long", 4, 20, true},
		{"multibyte_counted_as_runes", "管理者アカウント", 4, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MinLen("username", tt.value, tt.min).
				MaxLen("username", tt.value, tt.max)

			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "admin").
		MinLen("username", "admin", 4).
		MaxLen("username", "admin", 20).
		Required("password", "correct horse battery").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").        // Fails
		MinLen("password", "abc", 8).    // Fails
		Custom("limit", true, "Custom"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
