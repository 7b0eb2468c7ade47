// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package orders

import "context"

// # Repository Contracts

// OrderRepository defines the persistence contract for purchase records.
type OrderRepository interface {
	/*
		Create persists a new order with its priced item snapshot.

		Parameters:
		  - context: context.Context
		  - order: *Order (ID, TotalAmount, and CreatedAt already assigned)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, order *Order) error

	/*
		ListByUser returns every order placed by a user, newest first.

		Returns:
		  - []Order: The user's orders (empty slice when none)
		  - error: Storage failures
	*/
	ListByUser(context context.Context, userID string) ([]Order, error)
}
