package models

// Store is a physical branch shown on the store-locator page.
type Store struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `json:"address"`
	City      string  `gorm:"index" json:"city"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hours     string  `json:"hours"`
}
