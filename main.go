package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/auth"
	"github.com/Terry-Diana/china-shop-sub000/config"
	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
	"github.com/Terry-Diana/china-shop-sub000/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()
	auth.Init(cfg.JWTSecret)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("starting storefront API")

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.CartItem{},
		&models.FavoriteItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Banner{},
		&models.Store{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}
	seedSuperAdmin(db)

	// Redis holds comparison lists and checkout sessions
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	// Realtime change feed
	hub := realtime.NewHub()

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestLogger(&log.Logger), gin.Recovery())
	r.MaxMultipartMemory = 32 << 20 // 32MB uploads

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Comparison-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(r, db, rdb, hub, cfg)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect DB")
	}
	return db
}

// seedSuperAdmin bootstraps the first super_admin from the environment so a
// fresh deployment can log into the back office. No-op once any admin exists.
func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SUPER_ADMIN_EMAIL")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash super admin password")
		return
	}
	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Super Admin",
		Role:         models.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed super admin")
		return
	}
	log.Info().Str("email", email).Msg("seeded super admin")
}
