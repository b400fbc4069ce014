// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentra-hq/sentra/internal/platform/middleware"
)

// envConfig is a minimal AppConfig stub for CORS tests.
type envConfig struct {
	development bool
}

func (cfg envConfig) IsDevelopment() bool { return cfg.development }

func corsRequest(t *testing.T, cfg envConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if origin != "" {
		request.Header.Set("Origin", origin)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS_ProductionOriginMatching verifies that production only admits the
apex domain and its subdomains — lookalike registrations sharing the domain
as a suffix are rejected.
*/
func TestCORS_ProductionOriginMatching(t *testing.T) {
	production := envConfig{development: false}

	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{"apex_domain", "https://sentra.app", true},
		{"subdomain", "https://admin.sentra.app", true},
		{"lookalike_suffix", "https://evil-sentra.app", false},
		{"unrelated_domain", "https://example.com", false},
		{"bare_suffix_in_path", "https://example.com/sentra.app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := corsRequest(t, production, tt.origin)

			allowOrigin := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.allowed {
				assert.Equal(t, tt.origin, allowOrigin)
			} else {
				assert.Empty(t, allowOrigin)
			}
		})
	}
}

/*
TestCORS_Development verifies that development admits any origin.
*/
func TestCORS_Development(t *testing.T) {
	recorder := corsRequest(t, envConfig{development: true}, "http://localhost:5173")

	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_Preflight verifies OPTIONS requests short-circuit with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(envConfig{development: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	request := httptest.NewRequest(http.MethodOptions, "/articles", nil)
	request.Header.Set("Origin", "http://localhost:5173")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
