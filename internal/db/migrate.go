package db

import (
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations for the storefront tables.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Category{},
		&model.Product{},
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := CreateSearchIndex(DB); err != nil {
		logger.Error("Failed to create product search index", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// CreateSearchIndex builds the full-text index over product name and
// description. Only Postgres supports it; on other dialects (the SQLite test
// database) search falls back to plain LIKE scans, so the index is skipped.
func CreateSearchIndex(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		logger.Debug("Skipping product search index", map[string]interface{}{
			"dialect": db.Dialector.Name(),
		})
		return nil
	}

	return db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_products_search
		 ON products
		 USING GIN (to_tsvector('simple', coalesce(name, '') || ' ' || coalesce(description, '')))`,
	).Error
}
