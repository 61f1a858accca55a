package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/auth"
)

// SetupAuthRoutes registers signup/login for shoppers and back-office staff.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/admin/login", auth.AdminLogin(db))
	}
}
