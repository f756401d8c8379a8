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

// CartLine is one priced cart row. Subtotal uses the product's current
// catalog price, not a snapshot, so price changes show up on the next view.
type CartLine struct {
	Product  model.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Lines []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CartService operates on the session-held cart mapping (product ID string to
// quantity). Methods take the current cart in and return the replacement out;
// the caller persists it back to the session.
type CartService interface {
	Add(cart map[string]int, productID string, quantity int) map[string]int
	Replace(form map[string][]string) map[string]int
	Remove(cart map[string]int, productID string) map[string]int
	View(cart map[string]int) (*CartView, error)
}

type cartService struct {
	productRepo repository.ProductRepository
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{productRepo: productRepo}
}

// Add increments an existing entry or inserts a new one. Quantity is taken as
// given: there is no positivity or stock validation.
func (s *cartService) Add(cart map[string]int, productID string, quantity int) map[string]int {
	if cart == nil {
		cart = map[string]int{}
	}
	cart[productID] += quantity

	logger.Debug("Cart entry added", map[string]interface{}{
		"product_id": productID,
		"quantity":   cart[productID],
	})
	return cart
}

// Replace builds a whole new cart from submitted form values, discarding any
// entry whose quantity is unparsable or not positive. The result overwrites
// the previous cart; it is not a merge.
func (s *cartService) Replace(form map[string][]string) map[string]int {
	cart := map[string]int{}
	for productID, values := range form {
		if len(values) == 0 {
			continue
		}
		quantity, err := strconv.Atoi(values[0])
		if err != nil || quantity <= 0 {
			continue
		}
		cart[productID] = quantity
	}

	logger.Debug("Cart replaced", map[string]interface{}{
		"entry_count": len(cart),
	})
	return cart
}

// Remove deletes one entry; removing an absent entry is a no-op.
func (s *cartService) Remove(cart map[string]int, productID string) map[string]int {
	if cart == nil {
		return map[string]int{}
	}
	delete(cart, productID)
	return cart
}

// View resolves every cart entry against the current catalog. Entries whose
// product no longer exists (or whose ID does not parse) are silently skipped;
// the stored cart is not corrected. Lines come back in product ID order.
func (s *cartService) View(cart map[string]int) (*CartView, error) {
	view := &CartView{
		Lines: []CartLine{},
		Total: decimal.Zero,
	}

	productIDs := make([]string, 0, len(cart))
	for id := range cart {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	for _, rawID := range productIDs {
		id, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			continue
		}

		product, err := s.productRepo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			logger.Error("Failed to resolve cart product", err, map[string]interface{}{
				"product_id": rawID,
			})
			return nil, err
		}

		quantity := cart[rawID]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		view.Lines = append(view.Lines, CartLine{
			Product:  *product,
			Quantity: quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}

	logger.Debug("Cart view computed", map[string]interface{}{
		"line_count": len(view.Lines),
		"total":      view.Total,
	})
	return view, nil
}
