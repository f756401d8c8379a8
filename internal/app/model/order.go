package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Orders have no lifecycle beyond placement. Rows are append-only.
const (
	OrderStatusPlaced OrderStatus = "placed"
)

type Order struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"type:varchar(20);default:'placed'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a point-in-time snapshot of a product at checkout. Name and
// Price are copied so later catalog edits or deletions never alter the order.
type OrderItem struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Name      string          `gorm:"not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
