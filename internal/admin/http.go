// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

/*
Package admin — HTTP delivery layer for the authentication lifecycle.

The handler acts as a thin mediation layer between the web and the domain
service:
  - Protocol: Standard RESTful JSON interface.
  - Security: Owns the session transport — writing the access token cookie
    on login and clearing it on logout.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes,
headers, cookies, JSON).
*/
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sentra-hq/sentra/internal/platform/constants"
	"github.com/sentra-hq/sentra/internal/platform/middleware"
	requestutil "github.com/sentra-hq/sentra/internal/platform/request"
	"github.com/sentra-hq/sentra/internal/platform/respond"
	"github.com/sentra-hq/sentra/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	service *Service

	// secureCookies marks issued cookies as Secure. Driven by configuration
	// so plain-HTTP development environments keep working.
	secureCookies bool
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /login           : Verifies credentials and sets the session cookie.
//   - POST /logout          : Clears the session cookie client-side.
//   - GET  /profile         : Returns the authenticated identity.
//   - GET  /checkAuthStatus : Reports whether the caller holds a valid token.
//   - POST /changePassword  : Rotates the caller's password.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/profile", handler.profile)
		r.Get("/checkAuthStatus", handler.checkAuthStatus)
		r.Post("/changePassword", handler.changePassword)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// # Response Payloads

type profileResponse struct {
	AdminID  string `json:"adminId"`
	Username string `json:"username"`
}

/*
Login authenticates an admin and establishes a stateless session.

POST /auth/login

Description: Verifies credentials, generates a JWT, and injects the signed
token into an HTTP-only "access_token" cookie. The token value never appears
in the JSON body — the cookie is the transport.

Request:
  - Body: loginRequest (Username, Password, RememberMe)

Response:
  - 200: {message, code} and the Set-Cookie header
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: InvalidCredentials: Unknown username or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Username:   input.Username,
		Password:   input.Password,
		RememberMe: input.RememberMe,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session.Token, session.CookieMaxAge)

	respond.JSON(writer, http.StatusOK, map[string]any{
		constants.FieldMessage: "Login successful",
		constants.FieldCode:    http.StatusOK,
	})
}

/*
Logout terminates the session on the client side.

POST /auth/logout

Description: Clears the access token cookie. The token itself stays valid
until its natural expiry — there is no server-side session table to
invalidate.

Response:
  - 200: {message, code}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.clearSessionCookie(writer)

	respond.JSON(writer, http.StatusOK, map[string]any{
		constants.FieldMessage: "Logged out",
		constants.FieldCode:    http.StatusOK,
	})
}

/*
Profile returns the identity named by the presented token.

GET /auth/profile

Description: Reads the request-scoped claims attached by the authentication
middleware. The credential store is not consulted — the token is
self-contained.

Response:
  - 200: profileResponse (adminId, username)
  - 401: Unauthorized: Missing, malformed, or expired token
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, profileResponse{
		AdminID:  claims.AdminID(),
		Username: claims.Username,
	})
}

/*
CheckAuthStatus reports whether the caller is authenticated.

GET /auth/checkAuthStatus

Response:
  - 200: {isAuthenticated: true}
  - 401: Unauthorized
*/
func (handler *Handler) checkAuthStatus(writer http.ResponseWriter, request *http.Request) {
	if _, err := requestutil.RequiredClaims(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]bool{
		"isAuthenticated": true,
	})
}

/*
ChangePassword rotates the authenticated admin's password.

POST /auth/changePassword

Request:
  - Body: changePasswordRequest (CurrentPassword, NewPassword)

Response:
  - 204: No Content
  - 400: Validation failure on the new password
  - 401: Current password incorrect
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	err = handler.service.ChangePassword(request.Context(), claims.AdminID(), input.CurrentPassword, input.NewPassword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Session Transport

// setSessionCookie attaches the signed token to the response.
//
// maxAge of zero produces a browser-session cookie; a positive value makes
// the cookie persistent. The cookie lifetime and the token's signed expiry
// are independent: a persisted cookie whose token has expired is rejected
// with 401 on the next request.
func (handler *Handler) setSessionCookie(writer http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func (handler *Handler) clearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
