package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

// POST /admin/banners — multipart: image file plus display fields.
func UploadBanner(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := filepath.Join(uploadDir, "banners")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		baseName := strings.ReplaceAll(fileHeader.Filename, " ", "_")
		newFileName := fmt.Sprintf("%d_%s", time.Now().Unix(), baseName)
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(saveDir, newFileName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		position := 0
		fmt.Sscanf(c.PostForm("position"), "%d", &position)

		banner := models.Banner{
			Title:    c.PostForm("title"),
			Subtitle: c.PostForm("subtitle"),
			Link:     c.PostForm("link"),
			ImageURL: fmt.Sprintf("/uploads/banners/%s", newFileName),
			Position: position,
			Active:   c.PostForm("active") != "false",
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GET /admin/banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("position ASC, id ASC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GET /banners — storefront home page only sees active banners.
func GetActiveBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Where("active = ?", true).Order("position ASC, id ASC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

type BannerUpdateRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Link     *string `json:"link"`
	Position *int    `json:"position"`
	Active   *bool   `json:"active"`
}

// PUT /admin/banners/:id
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		var req BannerUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Subtitle != nil {
			updates["subtitle"] = *req.Subtitle
		}
		if req.Link != nil {
			updates["link"] = *req.Link
		}
		if req.Position != nil {
			updates["position"] = *req.Position
		}
		if req.Active != nil {
			updates["active"] = *req.Active
		}

		if len(updates) > 0 {
			if err := db.Model(&banner).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
				return
			}
		}
		c.JSON(http.StatusOK, banner)
	}
}

// DELETE /admin/banners/:id — removes the DB row and the file on disk.
func DeleteBanner(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(uploadDir, strings.TrimPrefix(banner.ImageURL, "/uploads/"))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
