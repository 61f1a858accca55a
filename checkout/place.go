package checkout

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/pricing"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// PlacementRequest carries what the wizard collected before Review.
type PlacementRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Street        string `json:"street" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Place turns the user's cart into an order in one transaction: stock is
// checked and decremented per line, the order and its item snapshots are
// created, the tracking number is derived from the assigned id, and the cart
// is cleared. Any failure rolls the whole thing back.
func Place(db *gorm.DB, userID uint, req PlacementRequest) (models.Order, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			// Atomic compare-and-decrement; zero rows affected means the
			// stock ran out since the cart was filled.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for product: %s", item.Product.Name)
			}

			subtotal += item.Product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Image:       item.Product.Image,
				Price:       item.Product.Price,
				Quantity:    item.Quantity,
			})
		}

		subtotal = pricing.Round2(subtotal)
		now := time.Now()
		order = models.Order{
			UserID:         userID,
			Items:          orderItems,
			Subtotal:       subtotal,
			Tax:            pricing.Tax(subtotal),
			ShippingCost:   pricing.Shipping(subtotal),
			Total:          pricing.Total(subtotal),
			Status:         models.OrderStatusPending,
			PaymentMethod:  req.PaymentMethod,
			ShipName:       req.Name,
			ShipPhone:      req.Phone,
			ShipStreet:     req.Street,
			ShipCity:       req.City,
			ShipPostalCode: req.PostalCode,
			CreatedAt:      now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		order.TrackingNumber = pricing.TrackingNumber(order.ID, now)
		if err := tx.Model(&order).Update("tracking_number", order.TrackingNumber).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
