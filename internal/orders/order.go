// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package orders records completed checkout transactions.

An order is an immutable snapshot: the items and prices are captured at the
moment of purchase and never change when the catalog does. Lifecycle
management (fulfilment, shipping) is outside this package's responsibility;
the status field is recorded but transitions are not enforced.
*/
package orders

import "time"

// # Domain Enums

// Status represents the recorded state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// # Core Entities

// Order is a purchase record owned by a single user.
type Order struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	// Items is the priced snapshot of the cart, stored as a JSON document.
	Items []OrderItem `json:"items"`

	TotalAmount   float64   `json:"totalAmount"`
	Status        Status    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItem is one line of an order. Price is the per-unit price the catalog
// carried when the order was placed.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// # Field Identifiers

const (
	FieldItems         = "items"
	FieldProductID     = "productId"
	FieldQuantity      = "quantity"
	FieldPaymentMethod = "paymentMethod"
)
