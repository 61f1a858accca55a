package favoriteControllers

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

// GET /user/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.FavoriteItem
		if err := db.Preload("Product").Where("user_id = ?", middleware.UserID(c)).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/favorites/:product_id
// Toggle semantics: present -> removed, absent -> added.
func ToggleFavorite(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var existing models.FavoriteItem
		err = db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
		switch {
		case err == nil:
			if err := db.Delete(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			hub.Publish(realtime.Event{Table: "favorite_items", Action: realtime.ActionDelete, UserID: userID, ProductID: uint(productID)})
			c.JSON(http.StatusOK, gin.H{"favorited": false})
		case err == gorm.ErrRecordNotFound:
			var product models.Product
			if err := db.First(&product, productID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			item := models.FavoriteItem{UserID: userID, ProductID: uint(productID), CreatedAt: time.Now()}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
				return
			}
			hub.Publish(realtime.Event{Table: "favorite_items", Action: realtime.ActionInsert, UserID: userID, ProductID: uint(productID)})
			c.JSON(http.StatusCreated, gin.H{"favorited": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
		}
	}
}

// DELETE /user/favorites/:product_id
func RemoveFavorite(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		res := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.FavoriteItem{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		hub.Publish(realtime.Event{Table: "favorite_items", Action: realtime.ActionDelete, UserID: userID, ProductID: uint(productID)})
		c.JSON(http.StatusOK, gin.H{"favorited": false})
	}
}
