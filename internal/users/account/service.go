// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vantran/mercato/internal/users/auth"
	"github.com/vantran/mercato/pkg/pagination"
)

// # Service Layer

// Service orchestrates business logic for the user directory.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Directory

/*
ListUsers returns a page of every registered account.

Description: Admin-only directory view. Password hashes never leave the
entity's JSON representation.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total account count
  - error: Storage failures
*/
func (service *Service) ListUsers(context context.Context, params pagination.Params) ([]auth.User, int, error) {
	users, total, err := service.accountRepository.List(context, params)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}
