package models

import "time"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	ID             string          `gorm:"primaryKey" json:"id"` // id issued by the identity provider
	Email          string          `gorm:"unique;not null" json:"email"`
	Name           string          `json:"name"`
	Role           Role            `gorm:"type:VARCHAR(10);default:'CLIENT'" json:"role"`
	ProductLimit   int             `gorm:"default:10" json:"product_limit"`
	BrandOwners    []BrandOwner    `gorm:"foreignKey:UserID" json:"brand_owners,omitempty"`
	SellerRequests []SellerRequest `gorm:"foreignKey:UserID" json:"seller_requests,omitempty"`
	Orders         []Order         `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
