package models

import "time"

// CartItem holds one product in a user's cart. The unique index enforces at
// most one row per (user, product); adding again increments Quantity instead.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	AddedAt   time.Time
}

type FavoriteItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time
}
