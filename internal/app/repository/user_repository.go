package repository

import (
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByCredentials(username, password string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The unique index on username makes this the
// single conditional write that enforces uniqueness; a duplicate surfaces as
// gorm.ErrDuplicatedKey.
func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"username": user.Username,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Warn("Failed to create user in database", map[string]interface{}{
			"username": user.Username,
			"error":    err.Error(),
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Debug("User lookup by ID failed", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		logger.Debug("User lookup by username failed", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

// FindByCredentials matches username and plaintext password exactly, the way
// the login flow checks credentials.
func (r *userRepository) FindByCredentials(username, password string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if err != nil {
		logger.Debug("Credential lookup failed", map[string]interface{}{
			"username": username,
		})
		return nil, err
	}
	return &user, nil
}
