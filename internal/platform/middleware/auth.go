// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/constants"
	"github.com/sentra-hq/sentra/internal/platform/ctxutil"
	"github.com/sentra-hq/sentra/internal/platform/respond"
	"github.com/sentra-hq/sentra/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.AdminClaims, error)
}

// ExtractToken reads the access token from an inbound request.
//
// Sources are checked in order: the "access_token" cookie first, then the
// "Authorization: Bearer" header. It returns the first present value, or an
// empty string when neither carries a token.
func ExtractToken(request *http.Request) string {
	if cookie, err := request.Cookie(constants.AccessTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}

// Authenticate extracts and verifies the JWT carried by the request.
//
// # Flow
//  1. Extract the token via [ExtractToken] (cookie, then bearer header).
//  2. If absent, the request proceeds as anonymous.
//  3. If present, verify the JWT via [TokenVerifier].
//  4. Inject [*sec.AdminClaims] into the request context for downstream use.
//
// A present-but-invalid token (bad signature, expired, malformed) aborts the
// request with 401 rather than degrading to anonymous.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tokenString := ExtractToken(request)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if tokenString == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := GetAdmin(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// GetAdmin retrieves the [*sec.AdminClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.AdminClaims] if the request is authenticated.
//   - nil if the request is anonymous.
func GetAdmin(ctx context.Context) *sec.AdminClaims {
	return ctxutil.GetAdmin(ctx)
}
