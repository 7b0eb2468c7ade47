// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package auth implements the core identity and access management (IAM) system.

It handles user registration with secure password hashing and stateless
authentication via signed JWTs.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted interface for Postgres (Users).
  - Security: Leverages Bcrypt and HMAC-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the platform’s lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/vantran/mercato/internal/platform/apperr"
	"github.com/vantran/mercato/internal/platform/sec"
	"github.com/vantran/mercato/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given identity.
	//
	// # Parameters
	//   - identity: The account snapshot embedded in the claims.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(identity sec.TokenIdentity, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Password string
	Profile  Profile
	Role     sec.UserRole
}

// AuthSession represents a successfully established authentication result.
type AuthSession struct {
	Token string
	User  *User
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member, handling password hashing and
issuing the initial 7-day access token.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *AuthSession: Signed token plus the created entity
  - err: Duplicate (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {

	// Verify email uniqueness. Return a client-safe Duplicate err.
	// The UNIQUE constraint on users.account(email) remains the hard
	// guarantee under concurrent registration; this pre-check only produces
	// the friendlier message.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Duplicate("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	role := input.Role
	if role == "" {
		role = sec.RoleCustomer
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Profile:      input.Profile,
		Role:         role,
		IsActive:     true,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	token, err := service.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthSession{Token: token, User: user}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues a fresh access token.

Description: Verifies identity, performs constant-time password comparison,
and stamps the account's last-login time.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *AuthSession: Transport-ready token and user
  - err: IncorrectCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*AuthSession, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)

	// If (err != nil) the user does not exist. The response is byte-identical
	// to the wrong-password case so the endpoint never confirms whether an
	// email is registered.
	if err != nil {
		return nil, apperr.IncorrectCredentials()
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.IncorrectCredentials()
	}

	// Record the successful login. Best-effort: a failed stamp must not block login.
	now := time.Now()
	if err := service.userRepository.UpdateLastLogin(context, user.ID, now); err == nil {
		user.LastLogin = &now
	}

	token, err := service.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthSession{Token: token, User: user}, nil
}

// issueToken signs a 7-day access token carrying the account's claim snapshot.
func (service *Service) issueToken(user *User) (string, error) {
	token, err := service.tokenProvider.GenerateAccessToken(sec.TokenIdentity{
		UserID:    user.ID,
		Role:      string(user.Role),
		Email:     user.Email,
		FirstName: user.Profile.FirstName,
		LastName:  user.Profile.LastName,
	}, AccessTokenTTL)

	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return token, nil
}
