package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/pricing"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount   int      `json:"review_count" binding:"omitempty,min=0"`
	Stock         int      `json:"stock" binding:"omitempty,min=0"`
	IsNew         bool     `json:"is_new"`
	BestSeller    bool     `json:"best_seller"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.OriginalPrice != 0 && input.OriginalPrice <= input.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "original_price must exceed price"})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Brand:         input.Brand,
			Category:      input.Category,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Discount:      pricing.DiscountPercent(input.Price, input.OriginalPrice),
			Image:         input.Image,
			Images:        input.Images,
			Rating:        input.Rating,
			ReviewCount:   input.ReviewCount,
			Stock:         input.Stock,
			IsNew:         input.IsNew,
			BestSeller:    input.BestSeller,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		log.Info().Uint("product_id", product.ID).Str("name", product.Name).Msg("product created")
		c.JSON(http.StatusCreated, product)
	}
}

// POST /admin/products/:id/image
// Stores the file on local disk and records its public /uploads URL.
func UploadProductImage(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		saveDir := filepath.Join(uploadDir, "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(file.Filename, " ", "_"))
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		imageURL := fmt.Sprintf("/uploads/products/%s", filename)
		product.Image = imageURL
		product.Images = append(product.Images, imageURL)
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image": imageURL})
	}
}
