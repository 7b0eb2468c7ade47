// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package orders

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/vantran/mercato/internal/catalog/product"
	"github.com/vantran/mercato/internal/platform/validate"
	"github.com/vantran/mercato/pkg/uuid"
)

// # Service Layer

// PriceResolver supplies the current catalog state for order pricing.
// The product repository satisfies it directly.
type PriceResolver interface {
	FindByID(context context.Context, id string) (*product.Product, error)
}

// Service orchestrates order recording.
type Service struct {
	orderRepository OrderRepository
	catalog         PriceResolver
	logger          *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(orderRepo OrderRepository, catalog PriceResolver, logger *slog.Logger) *Service {
	return &Service{
		orderRepository: orderRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// ItemInput is one requested line of a new order: which product and how many.
type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderInput carries everything needed to record an order.
type CreateOrderInput struct {
	Items         []ItemInput `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
}

// # Order Recording

/*
CreateOrder records a purchase for a user.

Description: Prices are never taken from the client. Each line is priced
from the catalog's current state (sale price when the product is on sale),
and the total is the sum of line prices times quantities. A reference to a
product that no longer exists fails the whole order.

Parameters:
  - context: context.Context
  - userID: string (the authenticated buyer)
  - input: CreateOrderInput

Returns:
  - *Order: The recorded order with its priced snapshot
  - error: Validation errors, apperr.NotFound for vanished products,
    or persistence errors
*/
func (service *Service) CreateOrder(context context.Context, userID string, input CreateOrderInput) (*Order, error) {

	// Structural validation
	validator := &validate.Validator{}
	validator.Required(FieldPaymentMethod, input.PaymentMethod)
	validator.Custom(FieldItems, len(input.Items) == 0, "Order must contain at least one item")
	for i, item := range input.Items {
		validator.Required(fmt.Sprintf("%s[%d].%s", FieldItems, i, FieldProductID), item.ProductID)
		validator.Custom(fmt.Sprintf("%s[%d].%s", FieldItems, i, FieldQuantity), item.Quantity < 1, "Must be at least 1")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Price each line from the current catalog state
	items := make([]OrderItem, 0, len(input.Items))
	var total float64
	for _, item := range input.Items {
		listed, err := service.catalog.FindByID(context, item.ProductID)
		if err != nil {
			return nil, err
		}

		unitPrice := effectivePrice(listed)
		items = append(items, OrderItem{
			ProductID: listed.ID,
			Quantity:  item.Quantity,
			Price:     unitPrice,
		})
		total += unitPrice * float64(item.Quantity)
	}

	order := &Order{
		ID:            uuid.New(),
		UserID:        userID,
		Items:         items,
		TotalAmount:   roundCents(total),
		Status:        StatusPending,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := service.orderRepository.Create(context, order); err != nil {
		return nil, err
	}

	service.logger.Info("order_created",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Float64("total", order.TotalAmount),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

/*
ListOrders returns the purchase history of a user, newest first.

Returns:
  - []Order: The user's orders (empty slice for a user who never bought)
  - error: Storage failures
*/
func (service *Service) ListOrders(context context.Context, userID string) ([]Order, error) {
	return service.orderRepository.ListByUser(context, userID)
}

// effectivePrice returns the price a customer actually pays right now.
func effectivePrice(listed *product.Product) float64 {
	if listed.IsSale && listed.SalePrice > 0 {
		return listed.SalePrice
	}
	return listed.Price
}

// roundCents rounds a monetary amount to two decimal places.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
