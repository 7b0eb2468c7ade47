// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
HTTP delivery layer for order recording.

Both endpoints require an authenticated session; orders always belong to the
caller. There is no cross-user order access surface.
*/
package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantran/mercato/internal/platform/middleware"
	requestutil "github.com/vantran/mercato/internal/platform/request"
	"github.com/vantran/mercato/internal/platform/respond"
)

// Handler implements the HTTP layer for orders.
type Handler struct {
	orderService *Service
}

// NewHandler constructs a new order [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{orderService: service}
}

// Routes returns a [chi.Router] configured with the order endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createOrder)
		r.Get("/me", handler.listMyOrders)
	})

	return router
}

// # Order Endpoints

/*
POST /api/v1/orders.

Description: Records an order for the authenticated user. Line prices and the
total are computed server-side from the current catalog; client-supplied
prices are ignored.

Request (Body):
  - items: [{productId, quantity}] (at least one line)
  - paymentMethod: string (required)

Response:
  - 201: Order: The recorded order with its priced snapshot
  - 400: ErrValidation: Empty cart, missing payment method, bad quantity
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: A referenced product no longer exists
*/
func (handler *Handler) createOrder(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateOrderInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.CreateOrder(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, order)
}

/*
GET /api/v1/orders/me.

Description: Returns the caller's purchase history, newest first. An empty
history is a valid 200 response with an empty array.

Response:
  - 200: []Order
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listMyOrders(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userOrders, err := handler.orderService.ListOrders(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, userOrders)
}
