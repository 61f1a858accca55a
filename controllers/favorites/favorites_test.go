package favoriteControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/Terry-Diana/china-shop-sub000/realtime"
)

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.FavoriteItem{}))
	require.NoError(t, db.Create(&models.Product{ID: 10, Name: "Kettle", Price: 2000}).Error)

	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	r := gin.New()
	g := r.Group("/user/favorites", func(c *gin.Context) { c.Set("user_id", uint(1)) })
	g.GET("", GetFavorites(db))
	g.POST("/:product_id", ToggleFavorite(db, hub))
	g.DELETE("/:product_id", RemoveFavorite(db, hub))
	return r, db
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestToggleAddsThenRemoves(t *testing.T) {
	r, db := testRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/user/favorites/10").Code)
	var count int64
	db.Model(&models.FavoriteItem{}).Count(&count)
	require.Equal(t, int64(1), count)

	// toggling again removes the row
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/user/favorites/10").Code)
	db.Model(&models.FavoriteItem{}).Count(&count)
	require.Zero(t, count)
}

func TestToggleUnknownProduct(t *testing.T) {
	r, _ := testRouter(t)
	require.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/user/favorites/999").Code)
}

func TestRemoveMissingFavorite(t *testing.T) {
	r, _ := testRouter(t)
	require.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/user/favorites/10").Code)
}
