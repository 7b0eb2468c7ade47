// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/platform/apperr"
	"github.com/vantran/mercato/internal/platform/respond"
	"github.com/vantran/mercato/internal/platform/sec"
	"github.com/vantran/mercato/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository for service-level tests.
type fakeUserRepository struct {
	byEmail     map[string]*auth.User
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*auth.User)}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.createCalls++
	if _, ok := f.byEmail[user.Email]; ok {
		return apperr.Duplicate("Email is already registered")
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	for _, user := range f.byEmail {
		if user.ID == userID {
			user.LastLogin = &at
			return nil
		}
	}
	return apperr.NotFound("User")
}

// fakeTokenProvider returns a fixed token string.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(_ sec.TokenIdentity, _ time.Duration) (string, error) {
	return "signed-token", nil
}

func validRegisterInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    "shopper@example.com",
		Password: "s3cret-pass",
		Profile: auth.Profile{
			FirstName: "Noa",
			LastName:  "Levi",
			Phone:     "0541234567",
			Address:   auth.Address{City: "Tel Aviv", Street: "Rothschild 12"},
		},
	}
}

/*
TestService_Register_Success verifies the happy path: account persisted,
password hashed, token issued, role defaulted to customer.
*/
func TestService_Register_Success(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, fakeTokenProvider{})

	session, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, sec.RoleCustomer, session.User.Role)
	assert.NotEmpty(t, session.User.ID)
	assert.True(t, session.User.IsActive)

	// Plain-text password must never be stored.
	assert.NotEqual(t, "s3cret-pass", session.User.PasswordHash)
	assert.NotEmpty(t, session.User.PasswordHash)
}

/*
TestHandler_Register_MissingProfileField verifies that an incomplete profile
is rejected with a field-level validation error before any repository write.
*/
func TestHandler_Register_MissingProfileField(t *testing.T) {
	repo := newFakeUserRepository()
	handler := auth.NewHandler(auth.NewService(repo, fakeTokenProvider{}))

	body := `{
		"email": "shopper@example.com",
		"password": "s3cret-pass",
		"profile": {
			"firstName": "Noa",
			"lastName": "Levi",
			"phone": "0541234567",
			"address": {"street": "Rothschild 12"}
		}
	}`
	request := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	require.NotEmpty(t, envelope.Details)
	assert.Equal(t, auth.FieldCity, envelope.Details[0].Field)

	assert.Equal(t, 0, repo.createCalls)
}

/*
TestService_Register_DuplicateEmail verifies that a second registration with
the same email is rejected with a DUPLICATE error and no extra write.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, fakeTokenProvider{})

	_, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), validRegisterInput())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE", ae.Code)
	assert.Equal(t, 400, ae.HTTPStatus)

	// The pre-check fails before Create is attempted a second time.
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_Login_Indistinguishable verifies that an unknown email and a wrong
password produce the identical error, preventing account enumeration.
*/
func TestService_Login_Indistinguishable(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, fakeTokenProvider{})

	_, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	_, wrongPassErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "shopper@example.com",
		Password: "wrong-pass",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongPassErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, unknownAE.HTTPStatus, wrongAE.HTTPStatus)
	assert.Equal(t, 400, wrongAE.HTTPStatus)
}

/*
TestService_Login_Success verifies credential checking and last-login stamping.
*/
func TestService_Login_Success(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, fakeTokenProvider{})

	_, err := service.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "shopper@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", session.Token)
	require.NotNil(t, session.User.LastLogin)
	assert.WithinDuration(t, time.Now(), *session.User.LastLogin, 5*time.Second)
}
