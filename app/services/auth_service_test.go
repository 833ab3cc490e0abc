package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/pkg/auth"
)

func newAuthService(users *fakeUsers) *AuthService {
	return NewAuthService(users, auth.NewTokens("test-secret"))
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	token, err := svc.Register(context.Background(), "Asha", "asha@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	u := users.byEmail["asha@example.com"]
	require.NotNil(t, u)
	assert.Equal(t, "Asha", u.Name)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")
	assert.NotNil(t, u.CartData)

	claims, err := auth.NewTokens("test-secret").Validate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "asha@example.com", "password456")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterDuplicateWinsOverOtherFailures(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	// Same email plus a weak password: the duplicate is reported first.
	_, err = svc.Register(context.Background(), "Other", "asha@example.com", "short")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc := newAuthService(newFakeUsers())

	_, err := svc.Register(context.Background(), "Asha", "not-an-email", "password123")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterPasswordLengthBoundary(t *testing.T) {
	svc := newAuthService(newFakeUsers())

	_, err := svc.Register(context.Background(), "Asha", "a@example.com", "1234567")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(context.Background(), "Asha", "b@example.com", "12345678")
	assert.NoError(t, err, "exactly eight characters is accepted")
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "asha@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
