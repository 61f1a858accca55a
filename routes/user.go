package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/checkout"
	cartControllers "github.com/Terry-Diana/china-shop-sub000/controllers/cart"
	checkoutControllers "github.com/Terry-Diana/china-shop-sub000/controllers/checkout"
	favoriteControllers "github.com/Terry-Diana/china-shop-sub000/controllers/favorites"
	orderControllers "github.com/Terry-Diana/china-shop-sub000/controllers/order"
	userControllers "github.com/Terry-Diana/china-shop-sub000/controllers/user"
	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a shopper JWT.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, sessions *checkout.SessionStore) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// Profile
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddCartItem(db, hub))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(db, hub))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db, hub))
			cartGroup.DELETE("", cartControllers.ClearCart(db, hub))
		}

		// Wishlist
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("", favoriteControllers.GetFavorites(db))
			favGroup.POST("/:product_id", favoriteControllers.ToggleFavorite(db, hub))
			favGroup.DELETE("/:product_id", favoriteControllers.RemoveFavorite(db, hub))
		}

		// Checkout wizard
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.GET("/session", checkoutControllers.GetSession(db, sessions))
			checkoutGroup.POST("/session/continue", checkoutControllers.ContinueSession(db, sessions))
			checkoutGroup.POST("/session/back", checkoutControllers.BackSession(db, sessions))
			checkoutGroup.POST("", checkoutControllers.PlaceOrder(db, sessions, hub))
		}

		// Order history
		userGroup.GET("/orders", orderControllers.GetUserOrders(db))
		userGroup.GET("/orders/:orderID", orderControllers.GetUserOrderByID(db))
	}
}
