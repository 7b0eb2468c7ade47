// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
HTTP delivery layer for the user directory.

It implements the RESTful interface for users to read their own account data
and for administrators to enumerate all accounts.

# Security

GET / (the directory listing) is mounted behind RequireRole(admin); /me only
requires an authenticated session.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantran/mercato/internal/platform/middleware"
	requestutil "github.com/vantran/mercato/internal/platform/request"
	"github.com/vantran/mercato/internal/platform/respond"
	"github.com/vantran/mercato/internal/platform/sec"
	"github.com/vantran/mercato/pkg/pagination"
)

// Handler implements the HTTP layer for the user directory.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// RegisterRoutes adds the directory endpoints to an existing router.
// The /users prefix is shared with the auth package's register/login routes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Self-service
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.getMe)
	})

	// Admin directory
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.listUsers)
	})
}

// # User Profile Endpoints

/*
GET /api/v1/users/me.

Description: Retrieves the full private profile of the authenticated user.
The password hash is never part of the JSON representation.

Response:
  - 200: User: Fully hydrated user profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
GET /api/v1/users.

Description: Admin-only paginated listing of every registered account.

Request:
  - page, limit: Query parameters (clamped to sane bounds)

Response:
  - 200: []User + pagination meta
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.ListUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}
