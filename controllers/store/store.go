package storeController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

// GET /stores — store locator listing, optionally narrowed by ?city=.
func GetStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("city, name")
		if city := c.Query("city"); city != "" {
			query = query.Where("LOWER(city) = LOWER(?)", city)
		}

		var stores []models.Store
		if err := query.Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		c.JSON(http.StatusOK, stores)
	}
}

type StoreInput struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	City      string  `json:"city" binding:"required"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hours     string  `json:"hours"`
}

// POST /admin/stores
func CreateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store := models.Store{
			Name:      input.Name,
			Address:   input.Address,
			City:      input.City,
			Phone:     input.Phone,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Hours:     input.Hours,
		}
		if err := db.Create(&store).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		c.JSON(http.StatusCreated, store)
	}
}

// PUT /admin/stores/:id
func UpdateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store models.Store
		if err := db.First(&store, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		var input StoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.Name = input.Name
		store.Address = input.Address
		store.City = input.City
		store.Phone = input.Phone
		store.Latitude = input.Latitude
		store.Longitude = input.Longitude
		store.Hours = input.Hours

		if err := db.Save(&store).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// DELETE /admin/stores/:id
func DeleteStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.Store{}, c.Param("id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
	}
}
