package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"trueestate/internal/domain/entity"
	"trueestate/pkg/errors"
)

func newAuthUseCaseForTest() (*AuthUseCase, *fakeUserRepository) {
	userRepo := newFakeUserRepository()
	return NewAuthUseCase(userRepo, &fakeTokenManager{}), userRepo
}

func TestLoginDemoAdmin(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	result, err := uc.Login(context.Background(), "admin@trueestate.com", "demo")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, result.User.Role)
	assert.True(t, result.User.Verified)
	assert.NotEmpty(t, result.Token)
}

func TestLoginDemoAccountsUseFixedPasswords(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	for _, email := range []string{"owner@trueestate.com", "agent@trueestate.com", "renter@trueestate.com"} {
		result, err := uc.Login(context.Background(), email, "demo123")
		require.NoError(t, err, email)
		assert.NotEmpty(t, result.Token)
	}

	_, err := uc.Login(context.Background(), "owner@trueestate.com", "demo")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterThenLogin(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	registered, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Jane@Example.com",
		Password: "hunter22",
		Name:     "Jane",
		Role:     entity.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", registered.User.Email)
	assert.Equal(t, entity.RoleOwner, registered.User.Role)

	result, err := uc.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	_, err = uc.Login(context.Background(), "jane@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	uc, userRepo := newAuthUseCaseForTest()

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sam@example.com",
		Password: "secret99",
		Name:     "Sam",
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByID(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret99", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret99")))
}

func TestRegisterDefaultsToRenter(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Password: "password1",
		Name:     "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleRenter, result.User.Role)
}

func TestRegisterRejectsDemoEmail(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "admin@trueestate.com",
		Password: "password1",
		Name:     "Impostor",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "dup@example.com",
		Password: "password1",
		Name:     "First",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), RegisterInput{
		Email:    "dup@example.com",
		Password: "password2",
		Name:     "Second",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sneaky@example.com",
		Password: "password1",
		Name:     "Sneaky",
		Role:     entity.RoleAdmin,
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetUserByIDResolvesDemoAccounts(t *testing.T) {
	uc, _ := newAuthUseCaseForTest()

	user, err := uc.GetUserByID(context.Background(), "demo-owner")

	require.NoError(t, err)
	assert.Equal(t, "owner@trueestate.com", user.Email)
	assert.Equal(t, entity.RoleOwner, user.Role)
}
