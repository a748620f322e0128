package models

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// SellerRequest is one onboarding application. A user may file several over
// time (re-filing after a rejection is allowed); the current one is the most
// recent by CreatedAt.
type SellerRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      string        `gorm:"not null;index" json:"user_id"`
	User        User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name        string        `gorm:"not null" json:"name"` // store name
	Description string        `json:"description"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	LogoURL     string        `json:"logo_url"`
	Status      RequestStatus `gorm:"type:VARCHAR(10);default:'PENDING'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
