package service

import (
	"errors"
	"sort"
	"strconv"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// RecentOrderCount is how many orders the admin dashboard shows.
const RecentOrderCount = 20

type OrderService interface {
	Checkout(userID uint, cart map[string]int) (*model.Order, error)
	RecentOrders() ([]model.Order, error)
	OrdersForUser(userID uint) ([]model.Order, error)
	OrderForUser(userID, orderID uint) (*model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Checkout turns the session cart into a persisted order. Each entry is
// resolved against the current catalog and snapshotted into an order item;
// entries whose product has disappeared are dropped rather than aborting the
// whole checkout. Stock is never decremented.
func (s *orderService) Checkout(userID uint, cart map[string]int) (*model.Order, error) {
	logger.Info("Creating order from cart", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(cart),
	})

	if len(cart) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	productIDs := make([]string, 0, len(cart))
	for id := range cart {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	var (
		items []model.OrderItem
		total = decimal.Zero
	)

	for _, rawID := range productIDs {
		id, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			continue
		}

		product, err := s.productRepo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Skipping vanished product during checkout", map[string]interface{}{
					"user_id":    userID,
					"product_id": rawID,
				})
				continue
			}
			logger.Error("Failed to resolve product during checkout", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": rawID,
			})
			return nil, err
		}

		quantity := cart[rawID]
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	order := &model.Order{
		UserID: userID,
		Total:  total,
		Status: model.OrderStatusPlaced,
		Items:  items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
			"total":   total,
		})
		return nil, err
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"user_id":    userID,
		"order_id":   order.ID,
		"total":      total,
		"item_count": len(items),
	})
	return order, nil
}

func (s *orderService) RecentOrders() ([]model.Order, error) {
	return s.orderRepo.FindRecent(RecentOrderCount)
}

func (s *orderService) OrdersForUser(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(userID)
}

// OrderForUser fetches one order, refusing to reveal whether an order ID
// exists when it belongs to someone else.
func (s *orderService) OrderForUser(userID, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
