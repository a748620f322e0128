package models

import "time"

type Brand struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"not null" json:"name"` // dedup is case-insensitive, enforced in the controller
	LogoURL     string       `json:"logo_url"`
	BrandOwners []BrandOwner `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"brand_owners,omitempty"`
	Products    []Product    `gorm:"foreignKey:BrandID" json:"products,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// BrandOwner links a seller to a brand. A brand may have several owners and a
// seller may own several brands.
type BrandOwner struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID uint   `gorm:"index;uniqueIndex:idx_brand_owner" json:"brand_id"`
	UserID  string `gorm:"index;uniqueIndex:idx_brand_owner" json:"user_id"`
	Brand   Brand  `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	User    User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
