package service

import (
	"testing"
	"time"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("jane@example.com", "password123", "Jane", model.RoleCompany, nil)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleCompany, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestAuthService_Register_UnknownRoleDefaultsToCompany(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("jane@example.com", "password123", "Jane", model.UserRole("pirate"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCompany, user.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("jane@example.com", "password123", "Jane", model.RoleCompany, nil)
	require.NoError(t, err)

	_, err = authService.Register("jane@example.com", "otherpass456", "Janet", model.RoleCompany, nil)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("jane@example.com", "password123", "Jane", model.RoleAdmin, nil)
	require.NoError(t, err)

	tokens, user, err := authService.Login("jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("jane@example.com", "password123", "Jane", model.RoleCompany, nil)
	require.NoError(t, err)

	_, _, err = authService.Login("jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
