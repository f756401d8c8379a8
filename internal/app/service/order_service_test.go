package service

import (
	"strconv"
	"testing"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	orderService := NewOrderService(orderRepo, productRepo)

	user := &model.User{
		Username: "user1",
		Password: "user1pass",
	}
	testDB.Create(user)

	product := &model.Product{
		Name:        "Cooking Pan Set",
		Description: "Non-stick 3-piece cooking pan set",
		Price:       decimal.RequireFromString("79.50"),
		Stock:       20,
		Category:    "Home",
		Images:      []string{},
	}
	testDB.Create(product)

	return orderService, user, product, testDB
}

func productKey(p *model.Product) string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	orderService, user, _, testDB := setupOrderServiceTest(t)

	_, err := orderService.Checkout(user.ID, map[string]int{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = orderService.Checkout(user.ID, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Nothing was persisted.
	var count int64
	testDB.Model(&model.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestOrderService_Checkout_Success(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	cart := map[string]int{productKey(product): 2}
	order, err := orderService.Checkout(user.ID, cart)
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, model.OrderStatusPlaced, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("159.00")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, "Cooking Pan Set", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].Price.Equal(product.Price))

	var persisted model.Order
	require.NoError(t, testDB.Preload("Items").First(&persisted, order.ID).Error)
	assert.Len(t, persisted.Items, 1)
}

func TestOrderService_Checkout_StockUntouched(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	_, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 5})
	require.NoError(t, err)

	var reloaded model.Product
	require.NoError(t, testDB.First(&reloaded, product.ID).Error)
	assert.Equal(t, 20, reloaded.Stock)
}

func TestOrderService_Checkout_SkipsVanishedProducts(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	gone := &model.Product{
		Name:     "Smartphone X",
		Price:    decimal.RequireFromString("699.00"),
		Stock:    15,
		Category: "Electronics",
		Images:   []string{},
	}
	testDB.Create(gone)

	cart := map[string]int{
		productKey(product): 1,
		productKey(gone):    1,
	}
	require.NoError(t, testDB.Delete(&model.Product{}, gone.ID).Error)

	order, err := orderService.Checkout(user.ID, cart)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.True(t, order.Total.Equal(product.Price))
}

func TestOrderService_Checkout_SnapshotSurvivesPriceChange(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	order, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 1})
	require.NoError(t, err)

	require.NoError(t, testDB.Model(product).
		Update("price", decimal.RequireFromString("999.99")).Error)

	var persisted model.Order
	require.NoError(t, testDB.Preload("Items").First(&persisted, order.ID).Error)
	assert.True(t, persisted.Items[0].Price.Equal(decimal.RequireFromString("79.50")))
	assert.True(t, persisted.Total.Equal(decimal.RequireFromString("79.50")))
}

func TestOrderService_Checkout_SnapshotSurvivesProductDelete(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	order, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 1})
	require.NoError(t, err)

	require.NoError(t, testDB.Delete(&model.Product{}, product.ID).Error)

	var persisted model.Order
	require.NoError(t, testDB.Preload("Items").First(&persisted, order.ID).Error)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, "Cooking Pan Set", persisted.Items[0].Name)
}

func TestOrderService_OrderForUser_OwnerOnly(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	other := &model.User{Username: "user2", Password: "user2pass"}
	testDB.Create(other)

	order, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 1})
	require.NoError(t, err)

	found, err := orderService.OrderForUser(user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Len(t, found.Items, 1)

	// Someone else's order reads as not found.
	_, err = orderService.OrderForUser(other.ID, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = orderService.OrderForUser(user.ID, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_OrdersForUser(t *testing.T) {
	orderService, user, product, testDB := setupOrderServiceTest(t)

	other := &model.User{Username: "user2", Password: "user2pass"}
	testDB.Create(other)

	_, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 1})
	require.NoError(t, err)
	_, err = orderService.Checkout(other.ID, map[string]int{productKey(product): 2})
	require.NoError(t, err)

	orders, err := orderService.OrdersForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, user.ID, orders[0].UserID)
}

func TestOrderService_RecentOrders(t *testing.T) {
	orderService, user, product, _ := setupOrderServiceTest(t)

	for i := 0; i < 3; i++ {
		_, err := orderService.Checkout(user.ID, map[string]int{productKey(product): 1})
		require.NoError(t, err)
	}

	orders, err := orderService.RecentOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
