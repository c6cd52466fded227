package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/app/services"
	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/auth"
)

func TestAuthService_Register(t *testing.T) {
	users := new(MockUserRepository)
	svc := services.NewAuthService(users)

	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
	users.On("Insert", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, user, err := svc.Register(context.Background(), "New User", "new@example.com", "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "New User", user.Name)
	assert.Equal(t, "new@example.com", user.Email)

	// The issued token verifies and carries the new user's identity.
	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "new@example.com", claims.Email)

	users.AssertExpectations(t)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := services.NewAuthService(new(MockUserRepository))

	cases := []struct{ name, email, password string }{
		{"", "a@b.com", "pw"},
		{"Name", "", "pw"},
		{"Name", "a@b.com", ""},
	}

	for _, tc := range cases {
		_, _, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
		require.Error(t, err)

		appErr := apperrors.From(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Name, email, and password are required", appErr.Message)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := services.NewAuthService(users)

	users.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: "u1", Email: "taken@example.com"}, nil).Once()

	_, _, err := svc.Register(context.Background(), "Someone", "taken@example.com", "pw")
	require.Error(t, err)

	appErr := apperrors.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "User with this email already exists", appErr.Message)

	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAuthService_Login_SeededUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := services.NewAuthService(users)

	seeded := &models.User{ID: "u-test", Name: "Test User", Email: "test@example.com", Password: "password123"}
	users.On("FindByCredentials", mock.Anything, "test@example.com", "password123").
		Return(seeded, nil).Once()

	token, user, err := svc.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
}

func TestAuthService_Login_GenericFailureMessage(t *testing.T) {
	users := new(MockUserRepository)
	svc := services.NewAuthService(users)

	// Unknown email and wrong password must be indistinguishable.
	users.On("FindByCredentials", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Twice()

	for _, creds := range [][2]string{
		{"nobody@example.com", "password123"},
		{"test@example.com", "wrong"},
	} {
		_, _, err := svc.Login(context.Background(), creds[0], creds[1])
		require.Error(t, err)

		appErr := apperrors.From(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Status)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := services.NewAuthService(new(MockUserRepository))

	for _, creds := range [][2]string{{"", "pw"}, {"a@b.com", ""}} {
		_, _, err := svc.Login(context.Background(), creds[0], creds[1])
		require.Error(t, err)

		appErr := apperrors.From(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Email and password are required", appErr.Message)
	}
}
