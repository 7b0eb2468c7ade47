// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package orders_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/catalog/product"
	"github.com/vantran/mercato/internal/orders"
	"github.com/vantran/mercato/internal/platform/apperr"
)

// fakeOrderRepository captures created orders in memory.
type fakeOrderRepository struct {
	created []*orders.Order
}

func (f *fakeOrderRepository) Create(_ context.Context, order *orders.Order) error {
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepository) ListByUser(_ context.Context, userID string) ([]orders.Order, error) {
	result := make([]orders.Order, 0)
	for _, order := range f.created {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

// fakeCatalog resolves products from a fixed map.
type fakeCatalog struct {
	products map[string]*product.Product
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*product.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Product")
}

func newOrderService(repo orders.OrderRepository, catalog orders.PriceResolver) *orders.Service {
	return orders.NewService(repo, catalog, slog.Default())
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]*product.Product{
		"p-keyboard": {ID: "p-keyboard", Name: "Keyboard", Price: 100},
		"p-mouse":    {ID: "p-mouse", Name: "Mouse", Price: 80, IsSale: true, SalePrice: 59.90},
	}}
}

/*
TestService_CreateOrder_PricesFromCatalog verifies that line prices and the
total come from the catalog's current state, with sale prices honored.
*/
func TestService_CreateOrder_PricesFromCatalog(t *testing.T) {
	repo := &fakeOrderRepository{}
	service := newOrderService(repo, testCatalog())

	order, err := service.CreateOrder(context.Background(), "user-1", orders.CreateOrderInput{
		Items: []orders.ItemInput{
			{ProductID: "p-keyboard", Quantity: 2},
			{ProductID: "p-mouse", Quantity: 1},
		},
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.InDelta(t, 100.0, order.Items[0].Price, 0.0001)
	assert.InDelta(t, 59.90, order.Items[1].Price, 0.0001)
	assert.InDelta(t, 259.90, order.TotalAmount, 0.0001)
	assert.Equal(t, orders.StatusPending, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	require.Len(t, repo.created, 1)
}

/*
TestService_CreateOrder_Validation verifies that an empty cart, a missing
payment method, and a non-positive quantity are all rejected without a write.
*/
func TestService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input orders.CreateOrderInput
	}{
		{"empty cart", orders.CreateOrderInput{PaymentMethod: "credit_card"}},
		{"missing payment method", orders.CreateOrderInput{
			Items: []orders.ItemInput{{ProductID: "p-keyboard", Quantity: 1}},
		}},
		{"zero quantity", orders.CreateOrderInput{
			Items:         []orders.ItemInput{{ProductID: "p-keyboard", Quantity: 0}},
			PaymentMethod: "credit_card",
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := &fakeOrderRepository{}
			service := newOrderService(repo, testCatalog())

			_, err := service.CreateOrder(context.Background(), "user-1", test.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.created)
		})
	}
}

/*
TestService_CreateOrder_VanishedProduct verifies that referencing a product
that no longer exists fails the whole order.
*/
func TestService_CreateOrder_VanishedProduct(t *testing.T) {
	repo := &fakeOrderRepository{}
	service := newOrderService(repo, testCatalog())

	_, err := service.CreateOrder(context.Background(), "user-1", orders.CreateOrderInput{
		Items:         []orders.ItemInput{{ProductID: "p-deleted", Quantity: 1}},
		PaymentMethod: "credit_card",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Empty(t, repo.created)
}

/*
TestService_ListOrders verifies per-user history isolation.
*/
func TestService_ListOrders(t *testing.T) {
	repo := &fakeOrderRepository{}
	service := newOrderService(repo, testCatalog())

	_, err := service.CreateOrder(context.Background(), "user-1", orders.CreateOrderInput{
		Items:         []orders.ItemInput{{ProductID: "p-keyboard", Quantity: 1}},
		PaymentMethod: "paypal",
	})
	require.NoError(t, err)

	mine, err := service.ListOrders(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := service.ListOrders(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
