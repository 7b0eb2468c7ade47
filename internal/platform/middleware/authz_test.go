// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/platform/middleware"
	"github.com/vantran/mercato/internal/platform/sec"
)

// fakeVerifier maps token strings onto canned claims.
type fakeVerifier struct {
	claims map[string]*sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if claims, ok := f.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, errors.New("sec: invalid token")
}

func newVerifier() *fakeVerifier {
	return &fakeVerifier{claims: map[string]*sec.AuthClaims{
		"customer-token": {UserID: "u-customer", Role: string(sec.RoleCustomer)},
		"admin-token":    {UserID: "u-admin", Role: string(sec.RoleAdmin)},
		"support-token":  {UserID: "u-support", Role: string(sec.RoleCustomerSupport)},
	}}
}

// adminProtected builds Authenticate → RequireRole(admin) → 200 handler.
func adminProtected() http.Handler {
	final := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	return middleware.Authenticate(newVerifier())(middleware.RequireRole(sec.RoleAdmin)(final))
}

func doRequest(t *testing.T, handler http.Handler, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestRequireRole_MissingToken verifies that an anonymous request to a guarded
route is rejected with 401.
*/
func TestRequireRole_MissingToken(t *testing.T) {
	recorder := doRequest(t, adminProtected(), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequireRole_InvalidToken verifies that an unverifiable token is rejected
with 401 before the role check.
*/
func TestRequireRole_InvalidToken(t *testing.T) {
	recorder := doRequest(t, adminProtected(), "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequireRole_WrongRole verifies that a valid customer token on an
admin-only route yields 403, not 401.
*/
func TestRequireRole_WrongRole(t *testing.T) {
	recorder := doRequest(t, adminProtected(), "customer-token")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

/*
TestRequireRole_Allowed verifies that the admin role passes through.
*/
func TestRequireRole_Allowed(t *testing.T) {
	recorder := doRequest(t, adminProtected(), "admin-token")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole_SetMembership verifies that roles are an exact set, not a
hierarchy: customer_support is allowed only where listed.
*/
func TestRequireRole_SetMembership(t *testing.T) {
	final := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	supportOrSeller := middleware.Authenticate(newVerifier())(
		middleware.RequireRole(sec.RoleCustomerSupport, sec.RoleSeller)(final))

	assert.Equal(t, http.StatusOK, doRequest(t, supportOrSeller, "support-token").Code)
	// Admin is not in the allowed set and does not implicitly outrank it.
	assert.Equal(t, http.StatusForbidden, doRequest(t, supportOrSeller, "admin-token").Code)
}

/*
TestRequireAuth_PassThrough verifies that RequireAuth admits any
authenticated identity regardless of role.
*/
func TestRequireAuth_PassThrough(t *testing.T) {
	final := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	guarded := middleware.Authenticate(newVerifier())(middleware.RequireAuth(final))

	require.Equal(t, http.StatusOK, doRequest(t, guarded, "customer-token").Code)
	require.Equal(t, http.StatusUnauthorized, doRequest(t, guarded, "").Code)
}
