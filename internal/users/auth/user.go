// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package auth implements the user identity and registration layer.

It defines the core domain entities (User, Profile) and logic for
authentication, authorization, and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/vantran/mercato/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Mercato platform.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Profile      Profile      `json:"profile"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	LastLogin    *time.Time   `json:"last_login,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Profile holds the descriptive account fields. It is stored as a single
// JSONB document alongside the identity row.
type Profile struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Position  string  `json:"position,omitempty"`
	Avatar    Avatar  `json:"avatar,omitempty"`
	Address   Address `json:"address"`
}

// Avatar is an optional profile image reference.
type Avatar struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Address is the account's shipping/billing address.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	HouseNo string `json:"houseNo,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// PublicProfile is the author view embedded in product reviews: only the
// fields safe to show to other shoppers.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    Avatar `json:"avatar,omitempty"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "profile.firstName"
	FieldLastName  = "profile.lastName"
	FieldPhone     = "profile.phone"
	FieldCity      = "profile.address.city"
	FieldStreet    = "profile.address.street"
	FieldRole      = "role"
	FieldToken     = "token"
	FieldUser      = "user"
	FieldMessage   = "message"
)
