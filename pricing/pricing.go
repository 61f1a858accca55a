// Package pricing holds the money arithmetic shared by checkout, order
// display, and the admin dashboard. Amounts are KES as float64, rounded to
// two decimals at every computation boundary.
package pricing

import (
	"fmt"
	"math"
	"time"
)

const (
	TaxRate               = 0.16 // VAT
	FreeShippingThreshold = 5000.0
	ShippingFee           = 500.0
)

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Tax is 16% of the subtotal.
func Tax(subtotal float64) float64 {
	return Round2(subtotal * TaxRate)
}

// Shipping is free strictly above the threshold, otherwise a flat fee.
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

func Total(subtotal float64) float64 {
	return Round2(subtotal + Tax(subtotal) + Shipping(subtotal))
}

// DiscountPercent is the displayed percent off for a discounted product.
// Zero when there is no meaningful original price.
func DiscountPercent(price, originalPrice float64) int {
	if originalPrice <= price || originalPrice == 0 {
		return 0
	}
	return int(math.Round((originalPrice - price) / originalPrice * 100))
}

// Savings is the arithmetic difference shown next to the discount badge.
func Savings(price, originalPrice float64) float64 {
	if originalPrice <= price {
		return 0
	}
	return Round2(originalPrice - price)
}

// TrackingNumber renders the human-readable order reference, e.g.
// ORD-2026-000042.
func TrackingNumber(orderID uint, placedAt time.Time) string {
	return fmt.Sprintf("ORD-%d-%06d", placedAt.Year(), orderID)
}
