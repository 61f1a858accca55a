package adminController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

func analyticsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	require.NoError(t, db.Create(&models.User{ID: 1, Email: "jane@example.com", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Kettle", Price: 400, Stock: 3}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 2, Name: "Blender", Price: 200, Stock: 50}).Error)

	require.NoError(t, db.Create(&models.Order{
		ID: 1, UserID: 1, Total: 1000, Status: models.OrderStatusPending, TrackingNumber: "ORD-2026-000001",
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Kettle", Price: 400, Quantity: 2},
			{ProductID: 2, ProductName: "Blender", Price: 200, Quantity: 1},
		},
	}).Error)
	require.NoError(t, db.Create(&models.Order{
		ID: 2, UserID: 1, Total: 500, Status: models.OrderStatusCancelled, TrackingNumber: "ORD-2026-000002",
	}).Error)
	return db
}

func dashboardRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/analytics/dashboard", GetDashboard(db))
	return r
}

func TestDashboardFigures(t *testing.T) {
	db := analyticsDB(t)
	r := dashboardRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Revenue        float64          `json:"revenue"`
		OrderCount     int64            `json:"order_count"`
		UserCount      int64            `json:"user_count"`
		ProductCount   int64            `json:"product_count"`
		OrdersByStatus map[string]int64 `json:"orders_by_status"`
		TopProducts    []topProduct     `json:"top_products"`
		LowStockCount  int64            `json:"low_stock_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// cancelled orders do not count toward revenue
	require.Equal(t, 1000.0, body.Revenue)
	require.EqualValues(t, 2, body.OrderCount)
	require.EqualValues(t, 1, body.UserCount)
	require.EqualValues(t, 2, body.ProductCount)
	require.EqualValues(t, 1, body.OrdersByStatus["pending"])
	require.EqualValues(t, 1, body.OrdersByStatus["cancelled"])
	require.EqualValues(t, 1, body.LowStockCount)

	require.NotEmpty(t, body.TopProducts)
	require.Equal(t, uint(1), body.TopProducts[0].ProductID)
	require.Equal(t, 2, body.TopProducts[0].UnitsSold)
}

func TestDashboardSurfacesQueryErrors(t *testing.T) {
	db := analyticsDB(t)
	r := dashboardRouter(db)

	// a failing query anywhere in the rollup must return 500, not zeros
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics/dashboard", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
