package model

type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null;index" json:"name"` // referenced by Product.Category by name, duplicates possible
	Description string `gorm:"type:text" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
