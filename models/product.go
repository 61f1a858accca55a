package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Description   string   `json:"description"`
	Brand         string   `gorm:"index" json:"brand"`
	Category      string   `gorm:"index" json:"category"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Discount      int      `json:"discount"` // percent off, 0 = not on sale
	Image         string   `json:"image"`
	Images        []string `gorm:"serializer:json" json:"images"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Stock         int      `json:"stock"`
	IsNew         bool     `json:"is_new"`
	BestSeller    bool     `json:"best_seller"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
