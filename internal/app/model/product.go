package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"default:0" json:"stock"`
	// Category holds the category name, not an ID. Nothing enforces that a
	// matching category row exists.
	Category  string    `gorm:"index" json:"category"`
	Images    []string  `gorm:"serializer:json;type:text" json:"images"`
	CreatedAt time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
