package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// loadCart fetches the user's full cart with derived totals. Every mutation
// responds with this refreshed view, so the client never patches locally.
func loadCart(db *gorm.DB, userID uint) (gin.H, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	var subtotal float64
	var count int
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	return gin.H{"items": items, "subtotal": subtotal, "item_count": count}, nil
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := loadCart(db, middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart
// Adding a product already in the cart increments its quantity; there is
// never more than one row per (user, product).
func AddCartItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		action := realtime.ActionUpdate
		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				UserID:    userID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			action = realtime.ActionInsert
		case err == nil:
			item.Quantity += input.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		hub.Publish(realtime.Event{Table: "cart_items", Action: action, UserID: userID, ProductID: product.ID})

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /user/cart/:product_id
// Quantity <= 0 is defined to mean removal.
func UpdateCartItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Quantity <= 0 {
			removeItem(c, db, hub, userID, uint(productID))
			return
		}

		res := db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Updates(map[string]interface{}{"quantity": input.Quantity, "added_at": time.Now()})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		hub.Publish(realtime.Event{Table: "cart_items", Action: realtime.ActionUpdate, UserID: userID, ProductID: uint(productID)})

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		removeItem(c, db, hub, userID, uint(productID))
	}
}

func removeItem(c *gin.Context, db *gorm.DB, hub *realtime.Hub, userID, productID uint) {
	res := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	hub.Publish(realtime.Event{Table: "cart_items", Action: realtime.ActionDelete, UserID: userID, ProductID: productID})

	cart, err := loadCart(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /user/cart
func ClearCart(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		hub.Publish(realtime.Event{Table: "cart_items", Action: realtime.ActionDelete, UserID: userID})

		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "subtotal": 0, "item_count": 0})
	}
}

// GET /admin/user-cart/:user_id
func GetUserCartAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		cart, err := loadCart(db, uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
