package service

import (
	"testing"

	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/internal/db"
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
	return NewAuthService(userRepo)
}

func TestAuthService_Register_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("alice", "wonderland")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("alice", "first")
	require.NoError(t, err)

	_, err = authService.Register("alice", "second")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	registered, err := authService.Register("alice", "wonderland")
	require.NoError(t, err)

	user, err := authService.Login("alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("alice", "wonderland")
	require.NoError(t, err)

	_, err = authService.Login("alice", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Login("nobody", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
