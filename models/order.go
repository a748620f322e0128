package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	OrderRef string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID   string      `gorm:"not null;index" json:"user_id"`
	User     User        `gorm:"foreignKey:UserID" json:"user"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
	// Total is supplied by the client at checkout (line items plus the
	// shipping option picked in the UI) and stored as-is.
	Total     float64     `json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // price at order time, frozen against later product edits
}
