package service

import (
	"errors"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// FeaturedProductCount is how many insertion-order products the landing page
// shows.
const FeaturedProductCount = 8

type CatalogService interface {
	ListCategories() ([]model.Category, error)
	CategoryNames() ([]string, error)
	FeaturedProducts() ([]model.Product, error)
	ListProducts(search, category string) ([]model.Product, error)
	ListAllProducts() ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	CreateProduct(product *model.Product) error
	DeleteProduct(id uint) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CategoryNames() ([]string, error) {
	return s.categoryRepo.ListNames()
}

func (s *catalogService) FeaturedProducts() ([]model.Product, error) {
	return s.productRepo.FindFeatured(FeaturedProductCount)
}

// ListProducts applies the optional free-text search and category filters.
// Both empty returns the full listing.
func (s *catalogService) ListProducts(search, category string) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"search":   search,
		"category": category,
	})

	return s.productRepo.FindWithFilter(repository.ProductFilter{
		Search:   search,
		Category: category,
	})
}

func (s *catalogService) ListAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	logger.Info("Creating product", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price,
	})

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

// DeleteProduct removes a product by ID. Reviews and order snapshots that
// reference it are left in place.
func (s *catalogService) DeleteProduct(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
