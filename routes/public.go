package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminController "github.com/Terry-Diana/china-shop-sub000/controllers/admin"
	comparisonControllers "github.com/Terry-Diana/china-shop-sub000/controllers/comparison"
	orderControllers "github.com/Terry-Diana/china-shop-sub000/controllers/order"
	productcontroller "github.com/Terry-Diana/china-shop-sub000/controllers/product"
	storeController "github.com/Terry-Diana/china-shop-sub000/controllers/store"
)

// SetupPublicRoutes registers everything a signed-out shopper can reach:
// catalog browsing, comparison, order tracking, banners, store locator.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/brands", productcontroller.GetBrands(db))
		products.GET("/categories", productcontroller.GetCategories(db))
		products.GET("/category/:category", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	comparison := r.Group("/comparison")
	{
		comparison.GET("", comparisonControllers.GetComparison(db, rdb))
		comparison.POST("/:product_id", comparisonControllers.AddToComparison(db, rdb))
		comparison.DELETE("/:product_id", comparisonControllers.RemoveFromComparison(db, rdb))
		comparison.DELETE("", comparisonControllers.ClearComparison(rdb))
	}

	r.GET("/orders/track/:tracking", orderControllers.TrackOrder(db))
	r.GET("/banners", adminController.GetActiveBanners(db))
	r.GET("/stores", storeController.GetStores(db))
}
