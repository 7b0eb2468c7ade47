// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/platform/sec"
)

func testIdentity() sec.TokenIdentity {
	return sec.TokenIdentity{
		UserID:    "0190cafe-0000-7000-8000-000000000001",
		Role:      string(sec.RoleCustomer),
		Email:     "shopper@example.com",
		FirstName: "Noa",
		LastName:  "Levi",
	}
}

/*
TestTokenService_RoundTrip verifies that a freshly issued token carries the
full identity snapshot back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "mercato.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(testIdentity(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "0190cafe-0000-7000-8000-000000000001", claims.UserID)
	assert.Equal(t, string(sec.RoleCustomer), claims.Role)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "Noa", claims.FirstName)
	assert.Equal(t, "Levi", claims.LastName)
	assert.Equal(t, "mercato.app", claims.Issuer)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret fails verification.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing, err := sec.NewTokenService("secret-one", "mercato.app")
	require.NoError(t, err)

	verifying, err := sec.NewTokenService("secret-two", "mercato.app")
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken(testIdentity(), time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	require.Error(t, err)
}

/*
TestTokenService_Expired verifies that an expired token is rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "mercato.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(testIdentity(), -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	require.Error(t, err)
}

/*
TestNewTokenService_EmptySecret verifies the fail-fast on a missing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "mercato.app")
	require.Error(t, err)
}

/*
TestTokenService_Garbage verifies that a non-JWT string is rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "mercato.app")
	require.NoError(t, err)

	_, err = service.VerifyToken("not-a-token")
	require.Error(t, err)
}
