package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/checkout"
	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

// requireNonEmptyCart is the wizard guard: checkout is unreachable without
// items in the cart.
func requireNonEmptyCart(c *gin.Context, db *gorm.DB, userID uint) bool {
	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return false
	}
	if count == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
		return false
	}
	return true
}

// GET /user/checkout/session
func GetSession(db *gorm.DB, sessions *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if !requireNonEmptyCart(c, db, userID) {
			return
		}
		step, err := sessions.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": step})
	}
}

// POST /user/checkout/session/continue
// Advances one step below Review; at Review the client submits the order
// via POST /user/checkout instead.
func ContinueSession(db *gorm.DB, sessions *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if !requireNonEmptyCart(c, db, userID) {
			return
		}
		ctx := c.Request.Context()
		step, err := sessions.Get(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
			return
		}
		if step == checkout.StepReview {
			c.JSON(http.StatusConflict, gin.H{"error": "Already at review; submit the order", "step": step})
			return
		}
		step = step.Next()
		if err := sessions.Set(ctx, userID, step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": step})
	}
}

// POST /user/checkout/session/back
func BackSession(db *gorm.DB, sessions *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if !requireNonEmptyCart(c, db, userID) {
			return
		}
		ctx := c.Request.Context()
		step, err := sessions.Get(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
			return
		}
		step = step.Prev()
		if err := sessions.Set(ctx, userID, step); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": step})
	}
}

// POST /user/checkout
func PlaceOrder(db *gorm.DB, sessions *checkout.SessionStore, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var req checkout.PlacementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := checkout.Place(db, userID, req)
		if err == checkout.ErrEmptyCart {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}
		if err != nil {
			log.Error().Err(err).Uint("user_id", userID).Msg("order placement failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := sessions.Clear(c.Request.Context(), userID); err != nil {
			log.Warn().Err(err).Uint("user_id", userID).Msg("failed to clear checkout session")
		}
		hub.Publish(realtime.Event{Table: "orders", Action: realtime.ActionInsert, UserID: userID, OrderID: order.ID})
		hub.Publish(realtime.Event{Table: "cart_items", Action: realtime.ActionDelete, UserID: userID})

		log.Info().
			Uint("order_id", order.ID).
			Str("tracking", order.TrackingNumber).
			Float64("total", order.Total).
			Msg("order placed")
		c.JSON(http.StatusCreated, order)
	}
}
