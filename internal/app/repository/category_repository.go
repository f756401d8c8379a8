package repository

import (
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	ListNames() ([]string, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}

	logger.Debug("Category created in database", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to find categories in database", err, nil)
		return nil, err
	}

	logger.Debug("Categories found in database", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *categoryRepository) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&model.Category{}).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		logger.Error("Failed to list category names", err, nil)
		return nil, err
	}
	return names, nil
}
