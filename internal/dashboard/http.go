// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
HTTP delivery layer for the admin dashboard.

Every endpoint requires an authenticated session. The /current endpoint is a
convenience alias of /users/me so the dashboard frontend talks to a single
route prefix.
*/
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantran/mercato/internal/platform/middleware"
	requestutil "github.com/vantran/mercato/internal/platform/request"
	"github.com/vantran/mercato/internal/platform/respond"
	"github.com/vantran/mercato/internal/users/account"
	"github.com/vantran/mercato/pkg/convert"
)

// Handler implements the HTTP layer for the dashboard.
type Handler struct {
	dashboardService *Service
	accountService   *account.Service
}

// NewHandler constructs a new dashboard [Handler].
func NewHandler(service *Service, accountService *account.Service) *Handler {
	return &Handler{
		dashboardService: service,
		accountService:   accountService,
	}
}

// Routes returns a [chi.Router] configured with the dashboard endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/stats", handler.getStats)
		r.Get("/new-customers", handler.getNewCustomers)
		r.Get("/revenue", handler.getRevenue)
		r.Get("/current", handler.getCurrentUser)
	})

	return router
}

// # Dashboard Endpoints

/*
GET /api/v1/dashboard/stats.

Description: Store-wide totals plus chart series, served from a short-lived
cache. Numbers may lag reality by up to the cache TTL.

Response:
  - 200: Stats
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.dashboardService.GetStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

/*
GET /api/v1/dashboard/new-customers?months=N.

Description: Monthly registration counts. A missing or malformed months
parameter falls back to the default window.

Response:
  - 200: []MonthlyCount
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getNewCustomers(writer http.ResponseWriter, request *http.Request) {
	months := convert.ToIntD(request.URL.Query().Get("months"), 0)

	series, err := handler.dashboardService.NewCustomers(request.Context(), months)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, series)
}

/*
GET /api/v1/dashboard/revenue?months=N.

Description: Monthly revenue from non-cancelled orders.

Response:
  - 200: []MonthlyAmount
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getRevenue(writer http.ResponseWriter, request *http.Request) {
	months := convert.ToIntD(request.URL.Query().Get("months"), 0)

	series, err := handler.dashboardService.Revenue(request.Context(), months)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, series)
}

/*
GET /api/v1/dashboard/current.

Description: The caller's own identity. Alias of GET /users/me kept for the
dashboard frontend.

Response:
  - 200: User
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getCurrentUser(writer http.ResponseWriter, request *http.Request) {
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
