// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package account handles user directory and self-service profile access.

It provides functionality for users to view their own identity data and for
administrators to enumerate every registered account.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Listing endpoints are gated to the admin role at the router.
*/
package account

import (
	"context"

	"github.com/vantran/mercato/internal/users/auth"
	"github.com/vantran/mercato/pkg/pagination"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		List returns a page of accounts ordered by registration time (newest
		first), together with the total account count.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []auth.User: Page of accounts (password hashes never serialized)
		  - int: Total number of accounts
		  - error: Storage failures
	*/
	List(context context.Context, params pagination.Params) ([]auth.User, int, error)
}
