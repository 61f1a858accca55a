package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Terry-Diana/china-shop-sub000/middleware"
	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	require.NoError(t, db.Create(&models.User{ID: 1, Email: "jane@example.com", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 10, Name: "Kettle", Price: 2000, Stock: 5}).Error)
	return db
}

// asUser stands in for the JWT middleware; token parsing is covered in the
// middleware package.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	r := gin.New()
	g := r.Group("/user/cart", asUser(1))
	g.GET("", GetCart(db))
	g.POST("", AddCartItem(db, hub))
	g.PUT("/:product_id", UpdateCartItem(db, hub))
	g.DELETE("/:product_id", DeleteCartItem(db, hub))
	g.DELETE("", ClearCart(db, hub))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartRows(t *testing.T, db *gorm.DB) []models.CartItem {
	t.Helper()
	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", 1).Find(&items).Error)
	return items
}

func TestAddTwiceMergesQuantities(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	items := cartRows(t, db)
	require.Len(t, items, 1, "same product must never produce two rows")
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10})
	items := cartRows(t, db)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 999})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, cartRows(t, db))
}

func TestUpdateQuantity(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 2})

	w := doJSON(t, r, http.MethodPut, "/user/cart/10", gin.H{"quantity": 7})
	require.Equal(t, http.StatusOK, w.Code)
	items := cartRows(t, db)
	require.Len(t, items, 1)
	require.Equal(t, 7, items[0].Quantity)
}

func TestZeroOrNegativeQuantityRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		t.Run(fmt.Sprintf("qty=%d", qty), func(t *testing.T) {
			db := testDB(t)
			r := testRouter(db)
			doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 2})

			w := doJSON(t, r, http.MethodPut, "/user/cart/10", gin.H{"quantity": qty})
			require.Equal(t, http.StatusOK, w.Code)
			require.Empty(t, cartRows(t, db), "quantity <= 0 means removal")
		})
	}
}

func TestDeleteAndClear(t *testing.T) {
	db := testDB(t)
	r := testRouter(db)
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 2})

	w := doJSON(t, r, http.MethodDelete, "/user/cart/10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, cartRows(t, db))

	// deleting a missing row is a 404, clearing an empty cart is fine
	w = doJSON(t, r, http.MethodDelete, "/user/cart/10", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetCartDerivedTotals(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Product{ID: 11, Name: "Toaster", Price: 1000, Stock: 9}).Error)
	r := testRouter(db)
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 10, "quantity": 2})
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 11, "quantity": 3})

	w := doJSON(t, r, http.MethodGet, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Subtotal  float64 `json:"subtotal"`
		ItemCount int     `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 7000.0, resp.Subtotal)
	require.Equal(t, 5, resp.ItemCount)
}

func TestCartRequiresAuthentication(t *testing.T) {
	db := testDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/cart", middleware.ValidateToken, GetCart(db))

	req := httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
