package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/catalog"
	"github.com/Terry-Diana/china-shop-sub000/models"
)

// filterFromQuery builds the catalog filter from the listing request. Bad
// numeric inputs default rather than erroring, so a mangled URL still
// renders a page.
func filterFromQuery(c *gin.Context) catalog.Filter {
	f := catalog.Filter{
		Category:  c.Param("category"),
		Query:     c.Query("q"),
		Quick:     c.Query("filter"),
		SortBy:    c.Query("sort_by"),
		InStock:   c.Query("in_stock") == "true",
		OnSale:    c.Query("on_sale") == "true",
		PriceMin:  parseFloatOr(c.Query("min_price"), 0),
		PriceMax:  parseFloatOr(c.Query("max_price"), 0), // 0 = unbounded
		MinRating: parseFloatOr(c.Query("min_rating"), 0),
	}
	if f.Category == "" {
		f.Category = c.Query("category")
	}
	if brands := c.Query("brands"); brands != "" {
		f.Brands = splitCSV(brands)
	}
	if cats := c.Query("categories"); cats != "" {
		f.Categories = splitCSV(cats)
	}
	return f
}

func parseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// GET /products
// GET /products/category/:category
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := catalog.Apply(products, filterFromQuery(c))
		c.JSON(http.StatusOK, gin.H{"products": filtered, "count": len(filtered)})
	}
}

// GET /products/brands — distinct brand list for the filter sidebar.
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []string
		if err := db.Model(&models.Product{}).
			Where("brand <> ''").
			Distinct("brand").
			Order("brand").
			Pluck("brand", &brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /products/categories — distinct categories for navigation.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Where("category <> ''").
			Distinct("category").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
