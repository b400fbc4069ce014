// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-hq/sentra/internal/platform/constants"
	"github.com/sentra-hq/sentra/internal/platform/middleware"
	"github.com/sentra-hq/sentra/internal/platform/sec"
)

// stubVerifier accepts exactly one token string and rejects everything else.
type stubVerifier struct {
	validToken string
	claims     *sec.AdminClaims
}

func (v *stubVerifier) Verify(tokenString string) (*sec.AdminClaims, error) {
	if tokenString == v.validToken {
		return v.claims, nil
	}
	return nil, errors.New("invalid token")
}

func adminClaims(id, username string) *sec.AdminClaims {
	return &sec.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: id},
		Username:         username,
	}
}

/*
TestExtractToken verifies the transport precedence: the access token cookie
wins over the Authorization header, and malformed headers yield nothing.
*/
func TestExtractToken(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		authHeader string
		want       string
	}{
		{"cookie_only", "cookie-token", "", "cookie-token"},
		{"bearer_only", "", "Bearer header-token", "header-token"},
		{"cookie_wins_over_bearer", "cookie-token", "Bearer header-token", "cookie-token"},
		{"bearer_case_insensitive", "", "bearer header-token", "header-token"},
		{"missing_scheme", "", "header-token", ""},
		{"wrong_scheme", "", "Basic dXNlcjpwYXNz", ""},
		{"absent", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: tt.cookie})
			}
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}

			assert.Equal(t, tt.want, middleware.ExtractToken(request))
		})
	}
}

/*
TestAuthenticate_Anonymous verifies that a request without any token passes
through unauthenticated instead of being rejected.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	verifier := &stubVerifier{validToken: "good", claims: adminClaims("admin-1", "admin")}

	var sawClaims *sec.AdminClaims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawClaims = middleware.GetAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, sawClaims)
}

/*
TestAuthenticate_InvalidToken verifies that a present-but-invalid token aborts
the request with 401 rather than degrading to anonymous.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{validToken: "good", claims: adminClaims("admin-1", "admin")}

	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer expired-or-forged")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

/*
TestAuthenticate_ValidToken verifies that claims land in the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &stubVerifier{validToken: "good", claims: adminClaims("admin-1", "admin")}

	var sawClaims *sec.AdminClaims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawClaims = middleware.GetAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "good"})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, sawClaims)
	assert.Equal(t, "admin-1", sawClaims.AdminID())
	assert.Equal(t, "admin", sawClaims.Username)
}

/*
TestRequireAuth verifies that unauthenticated requests are blocked with 401
while authenticated ones pass through.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &stubVerifier{validToken: "good", claims: adminClaims("admin-1", "admin")}

	chain := middleware.Authenticate(verifier)(
		middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	t.Run("anonymous_blocked", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated_allowed", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good")

		recorder := httptest.NewRecorder()
		chain.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
