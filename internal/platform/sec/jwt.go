// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [admin.TokenIssuer] interface.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the username and the password-change flag directly inside the
// JWT, the [middleware.Authenticate] chain can reconstruct the active admin
// context WITHOUT querying the database on every single API request.
type AdminClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	Username           string `json:"unm"`
	MustChangePassword bool   `json:"pwc,omitempty"`
}

// AdminID returns the subject identifier: the store-assigned ID of the admin
// record this token represents.
func (claims *AdminClaims) AdminID() string {
	return claims.Subject
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret and expiration policy are injected once at construction
// and never read from ambient state.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// minSecretLen guards against accidentally deploying with a trivial secret.
const minSecretLen = 16

// NewTokenService creates a new TokenService with the given signing secret,
// issuer name, and token time-to-live.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes", minSecretLen)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: token ttl must be positive, got %s", ttl)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a new signed access token for an admin.
//
// Two tokens issued for the same identity are independent credentials: each
// carries its own timestamps and remains valid until its own expiry.
func (service *TokenService) Issue(adminID, username string, mustChangePassword bool) (string, error) {
	currentTime := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Username:           username,
		MustChangePassword: mustChangePassword,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// It fails when the signature does not match, when the expiry has passed
// (a token presented exactly at its expiry instant is rejected), or when the
// token is structurally malformed. It never queries the credential store.
func (service *TokenService) Verify(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}
