// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// Registration and login issue the same 7-day token; clients are expected
	// to re-authenticate weekly.
	AccessTokenTTL = 7 * 24 * time.Hour

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8
)
