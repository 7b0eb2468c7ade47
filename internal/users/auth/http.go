// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle — from account
creation to login.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Handles JWT issuance on successful enrollment/authentication.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vantran/mercato/internal/platform/request"
	"github.com/vantran/mercato/internal/platform/respond"
	"github.com/vantran/mercato/internal/platform/sec"
	"github.com/vantran/mercato/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages everything related to the user lifecycle entry points
// (Registration, Login).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account and returns a JWT.
//   - POST /login    : Authenticates and returns a JWT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// RegisterRoutes adds the authentication endpoints to an existing router.
// The /users prefix is shared with the account package's directory routes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
}

// # Request Payloads

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Profile  Profile `json:"profile"`
	Role     string  `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/v1/users/register

Description: Validates input, checks for identity conflicts, and persists
a new user profile to the database. The repository is never touched when
validation fails.

Request:
  - Body: registerRequest (Email, Password, Profile, optional Role)

Response:
  - 201: token + created user profile
  - 400: Validation failure, or email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLength).
		Required(FieldFirstName, input.Profile.FirstName).
		Required(FieldLastName, input.Profile.LastName).
		Required(FieldPhone, input.Profile.Phone).
		Phone(FieldPhone, input.Profile.Phone).
		Required(FieldCity, input.Profile.Address.City).
		Required(FieldStreet, input.Profile.Address.Street)

	// Role defaults to customer; when provided it must be a known role.
	if input.Role != "" {
		validator.OneOf(FieldRole, input.Role, sec.RoleNames()...)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Profile:  input.Profile,
		Role:     sec.UserRole(input.Role),
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldToken: session.Token,
		FieldUser:  session.User,
	})
}

/*
Login authenticates a user and issues an access token.

POST /api/v1/users/login

Description: Verifies credentials and returns a signed 7-day JWT. Unknown
email and wrong password produce the same response body, so the endpoint
cannot be used for account enumeration.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: token + user profile
  - 400: Missing fields, or "Email or password is incorrect"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldToken: session.Token,
		FieldUser:  session.User,
	})
}
