// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, security settings, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Authentication: JWT issuer and session cookie configuration.
  - JSON Fields: Shared response field identifiers.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "sentra-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in issued JWTs.
	AuthIssuer = "sentra.app"

	// AccessTokenCookieName is the name of the cookie carrying the access token.
	AccessTokenCookieName = "access_token"

	// RememberMeCookieMaxAge is the cookie lifetime (in seconds) applied when
	// the client requests a persistent session at login. The signed token
	// keeps its own, independent expiry.
	RememberMeCookieMaxAge = int(24 * time.Hour / time.Second)

	// UsernameMinLen and UsernameMaxLen bound the admin username policy.
	UsernameMinLen = 4
	UsernameMaxLen = 20

	// PasswordMinLen is the minimum accepted password length.
	PasswordMinLen = 8
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixArticle = "articles:article:"
)
