package model

import (
	"time"
)

type Review struct {
	ID        uint `gorm:"primarykey" json:"id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	UserID    uint `gorm:"not null;index" json:"user_id"`
	// Username is denormalized at post time and never updated afterwards.
	Username  string    `json:"username"`
	Rating    int       `json:"rating"` // 1-5 expected, stored as given
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
