package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `json:"quantity"` // stock on hand, never negative
	ImageURL    string  `json:"image_url"`
	IsActive    bool    `gorm:"default:true" json:"is_active"` // soft delete: false hides from all catalog reads
	CategoryID  uint    `gorm:"index" json:"category_id"`
	BrandID     uint    `gorm:"index" json:"brand_id"`
	SellerID    string  `gorm:"index" json:"seller_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand       Brand     `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
