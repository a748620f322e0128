package models

import "time"

type HeroSlide struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Subtitle   string    `json:"subtitle"`
	ImageURL   string    `json:"image_url"`
	ButtonText string    `json:"button_text"`
	Href       string    `json:"href"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	Rank       int       `gorm:"column:display_order" json:"order"` // display position, ascending
	CreatedAt  time.Time `json:"created_at"`
}
