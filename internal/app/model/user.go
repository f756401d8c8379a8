package model

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password is stored and compared as plaintext. Hashing is deliberately
	// out of scope for this demo storefront.
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Orders  []Order  `gorm:"foreignKey:UserID" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
