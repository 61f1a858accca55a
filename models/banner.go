package models

import "time"

// Banner is a CMS entry rendered on the storefront home page.
type Banner struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Link      string `json:"link"`
	Position  int    `gorm:"default:0" json:"position"`
	Active    bool   `gorm:"default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
