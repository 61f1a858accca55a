package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

type topProduct struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// GET /admin/analytics/dashboard
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fail := func() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		}

		var productCount, userCount, orderCount int64
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			fail()
			return
		}
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			fail()
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			fail()
			return
		}

		// revenue excludes cancelled orders
		var revenue float64
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&revenue).Error; err != nil {
			fail()
			return
		}

		ordersByStatus := map[string]int64{}
		rows := []struct {
			Status models.OrderStatus
			N      int64
		}{}
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) AS n").
			Group("status").
			Scan(&rows).Error; err != nil {
			fail()
			return
		}
		for _, r := range rows {
			ordersByStatus[string(r.Status)] = r.N
		}

		var top []topProduct
		if err := db.Model(&models.OrderItem{}).
			Select("product_id, product_name, SUM(quantity) AS units_sold, SUM(price * quantity) AS revenue").
			Group("product_id, product_name").
			Order("units_sold DESC").
			Limit(5).
			Scan(&top).Error; err != nil {
			fail()
			return
		}

		var lowStock int64
		if err := db.Model(&models.Product{}).Where("stock <= ?", 5).Count(&lowStock).Error; err != nil {
			fail()
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"revenue":          revenue,
			"order_count":      orderCount,
			"user_count":       userCount,
			"product_count":    productCount,
			"orders_by_status": ordersByStatus,
			"top_products":     top,
			"low_stock_count":  lowStock,
		})
	}
}

// GET /admin/inventory — stock levels, optionally only those at or below
// ?threshold=.
func GetInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("stock ASC")
		if t := c.Query("threshold"); t != "" {
			threshold, err := strconv.Atoi(t)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
				return
			}
			query = query.Where("stock <= ?", threshold)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

type StockUpdateRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// PUT /admin/inventory/:id
func UpdateStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StockUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
			return
		}

		res := db.Model(&models.Product{}).Where("id = ?", c.Param("id")).Update("stock", *req.Stock)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "stock": *req.Stock})
	}
}
