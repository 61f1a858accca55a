package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/pricing"
)

type ProductUpdateInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Brand         *string   `json:"brand"`
	Category      *string   `json:"category"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Image         *string   `json:"image"`
	Images        *[]string `json:"images"`
	Rating        *float64  `json:"rating"`
	ReviewCount   *int      `json:"review_count"`
	Stock         *int      `json:"stock"`
	IsNew         *bool     `json:"is_new"`
	BestSeller    *bool     `json:"best_seller"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = *input.OriginalPrice
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.ReviewCount != nil {
			product.ReviewCount = *input.ReviewCount
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
				return
			}
			product.Stock = *input.Stock
		}
		if input.IsNew != nil {
			product.IsNew = *input.IsNew
		}
		if input.BestSeller != nil {
			product.BestSeller = *input.BestSeller
		}

		if product.OriginalPrice != 0 && product.OriginalPrice <= product.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "original_price must exceed price"})
			return
		}
		product.Discount = pricing.DiscountPercent(product.Price, product.OriginalPrice)

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
