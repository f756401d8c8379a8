package repository

import (
	"fmt"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter narrows a catalog listing. Zero values mean "no filter";
// Search and Category combine with logical AND.
type ProductFilter struct {
	Search   string
	Category string
	Limit    int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindFeatured(limit int) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name":     product.Name,
			"category": product.Category,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{})
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"search":   filter.Search,
		"category": filter.Category,
		"limit":    filter.Limit,
	})

	query := r.db.Model(&model.Product{}).Order("products.id ASC")

	if filter.Search != "" {
		if r.db.Dialector.Name() == "postgres" {
			// Matches the GIN index created in db.CreateSearchIndex.
			query = query.Where(
				"to_tsvector('simple', coalesce(name, '') || ' ' || coalesce(description, '')) @@ plainto_tsquery('simple', ?)",
				filter.Search,
			)
		} else {
			like := fmt.Sprintf("%%%s%%", filter.Search)
			query = query.Where("name LIKE ? OR description LIKE ?", like, like)
		}
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"search":   filter.Search,
			"category": filter.Category,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

// FindFeatured returns the first products in insertion order for the landing
// page.
func (r *productRepository) FindFeatured(limit int) ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{Limit: limit})
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		logger.Debug("Product lookup by ID failed", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	logger.Debug("Product deleted from database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
