package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Phone:    "11987654321",
		Address:  "Rua das Flores, 123",
		Password: "Senha123forte",
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	auth := NewAuthService(newMemStore())

	user, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := auth.UserByEmail("maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth := NewAuthService(newMemStore())
	_, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	dup := validRegisterInput()
	dup.Email = "MARIA@example.com"
	_, err = auth.Register(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidatesFields(t *testing.T) {
	auth := NewAuthService(newMemStore())

	_, err := auth.Register(RegisterInput{Name: "M", Email: "bad", Password: "short"})
	var fieldErrs utils.FieldValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 3)
}

func TestLoginRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newMemStore()
	auth := NewAuthService(store)
	registered, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	user, token, err := auth.Login("maria@example.com", "Senha123forte")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	userID, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	current, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := NewAuthService(newMemStore())
	_, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	_, _, err = auth.Login("maria@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login("nobody@example.com", "Senha123forte")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordsAreHashedAtRest(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store)
	_, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	raw := string(store.data[storage.KeyUsers])
	assert.NotContains(t, raw, "Senha123forte")
	assert.Contains(t, raw, "password_hash")
}

func TestLogoutClearsCurrentUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	auth := NewAuthService(newMemStore())
	_, err := auth.Register(validRegisterInput())
	require.NoError(t, err)
	_, _, err = auth.Login("maria@example.com", "Senha123forte")
	require.NoError(t, err)

	auth.Logout()
	_, ok := auth.CurrentUser()
	assert.False(t, ok)
}

func TestUpdateProfileAppliesNonEmptyFields(t *testing.T) {
	auth := NewAuthService(newMemStore())
	user, err := auth.Register(validRegisterInput())
	require.NoError(t, err)

	updated, err := auth.UpdateProfile(user.ID, ProfileUpdate{Name: "Maria Souza", Address: "Av. Paulista, 1000"})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Equal(t, "Av. Paulista, 1000", updated.Address)
	assert.Equal(t, "11987654321", updated.Phone, "untouched fields keep their value")
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	auth := NewAuthService(newMemStore())

	_, err := auth.UpdateProfile("nope", ProfileUpdate{Name: "X Y"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUsersPersistAcrossInstances(t *testing.T) {
	store := newMemStore()
	first := NewAuthService(store)
	user, err := first.Register(validRegisterInput())
	require.NoError(t, err)

	second := NewAuthService(store)
	found, err := second.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}
