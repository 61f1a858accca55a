package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/checkout"
	"github.com/Terry-Diana/china-shop-sub000/config"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

// SetupRoutes is the single entry point that wires up the public storefront,
// the JWT-protected user routes, and the admin back office.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, hub *realtime.Hub, cfg config.Config) {
	sessions := checkout.NewSessionStore(rdb)

	// Public storefront + auth (no middleware)
	SetupPublicRoutes(r, db, rdb)
	SetupAuthRoutes(r, db)

	// User routes (JWT protected)
	SetupUserRoutes(r, db, hub, sessions)

	// Admin routes (admin-role JWT)
	SetupAdminRoutes(r, db, hub, cfg.UploadDir)

	// Realtime change feed
	r.GET("/ws", realtime.ServeWS(hub))
}
