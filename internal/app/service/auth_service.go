package service

import (
	"errors"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService interface {
	Register(username, password string) (*model.User, error)
	Login(username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new account. Uniqueness rides on the username unique
// index: the insert either succeeds or comes back as a duplicate-key error,
// with no read-then-write window in between.
func (s *authService) Register(username, password string) (*model.User, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"username": username,
	})

	user := &model.User{
		Username: username,
		Password: password,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warn("Registration failed: username already exists", map[string]interface{}{
				"username": username,
			})
			return nil, ErrUsernameTaken
		}
		logger.Error("Failed to create user", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": username,
	})
	return user, nil
}

// Login matches username and password exactly. The caller is never told
// whether the username or the password was wrong.
func (s *authService) Login(username, password string) (*model.User, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"username": username,
	})

	user, err := s.userRepo.FindByCredentials(username, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: invalid credentials", map[string]interface{}{
				"username": username,
			})
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to look up credentials", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": username,
	})
	return user, nil
}
