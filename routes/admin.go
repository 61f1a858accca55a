package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/Terry-Diana/china-shop-sub000/controllers/admin"
	cartControllers "github.com/Terry-Diana/china-shop-sub000/controllers/cart"
	orderControllers "github.com/Terry-Diana/china-shop-sub000/controllers/order"
	productcontroller "github.com/Terry-Diana/china-shop-sub000/controllers/product"
	storeController "github.com/Terry-Diana/china-shop-sub000/controllers/store"
	userControllers "github.com/Terry-Diana/china-shop-sub000/controllers/user"
	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// an admin role; super_admin-only checks live in the handlers.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, uploadDir string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// Admin & user management
		adminMgmt := adminGroup.Group("/admins")
		{
			adminMgmt.GET("", adminController.GetAllAdmins(db))
			adminMgmt.POST("", adminController.CreateAdmin(db))
			adminMgmt.PUT("/:id/role", adminController.UpdateAdminRole(db))
		}
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/users/:id", userControllers.GetUserDetail(db))

		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/:id/image", productcontroller.UploadProductImage(db, uploadDir))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// Inventory
		inventory := adminGroup.Group("/inventory")
		{
			inventory.GET("", adminController.GetInventory(db))
			inventory.PUT("/:id", adminController.UpdateStock(db))
		}

		// Orders
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db, hub))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrder(db))
		}

		// Analytics
		adminGroup.GET("/analytics/dashboard", adminController.GetDashboard(db))

		// CMS banners
		bannerMgmt := adminGroup.Group("/banners")
		{
			bannerMgmt.POST("", adminController.UploadBanner(db, uploadDir))
			bannerMgmt.GET("", adminController.GetBanners(db))
			bannerMgmt.PUT("/:id", adminController.UpdateBanner(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db, uploadDir))
		}

		// Store locator management
		storeMgmt := adminGroup.Group("/stores")
		{
			storeMgmt.POST("", storeController.CreateStore(db))
			storeMgmt.PUT("/:id", storeController.UpdateStore(db))
			storeMgmt.DELETE("/:id", storeController.DeleteStore(db))
		}

		// Support view of a shopper's cart
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetUserCartAdmin(db))
	}
}
