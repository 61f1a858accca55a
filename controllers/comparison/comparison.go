// Package comparisonControllers keeps each browser's compare list in redis,
// keyed by an opaque token the client stores locally. Nothing here touches
// Postgres except resolving ids to products for display.
package comparisonControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

const (
	tokenHeader = "X-Comparison-Token"
	listTTL     = 7 * 24 * time.Hour
)

func listKey(token string) string {
	return fmt.Sprintf("compare:%s", token)
}

// clientToken returns the caller's token, minting one on first contact.
func clientToken(c *gin.Context) string {
	if t := c.GetHeader(tokenHeader); t != "" {
		return t
	}
	return uuid.NewString()
}

func loadIDs(ctx context.Context, rdb *redis.Client, token string) ([]uint, error) {
	val, err := rdb.Get(ctx, listKey(token)).Result()
	if err == redis.Nil {
		return []uint{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []uint
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return []uint{}, nil
	}
	return ids, nil
}

func saveIDs(ctx context.Context, rdb *redis.Client, token string, ids []uint) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, listKey(token), data, listTTL).Err()
}

func respond(c *gin.Context, db *gorm.DB, token string, ids []uint, extra gin.H) {
	products := make([]models.Product, 0, len(ids))
	if len(ids) > 0 {
		var rows []models.Product
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		// keep the list's insertion order
		byID := make(map[uint]models.Product, len(rows))
		for _, p := range rows {
			byID[p.ID] = p
		}
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				products = append(products, p)
			}
		}
	}

	payload := gin.H{
		"token":        token,
		"products":     products,
		"can_add_more": len(ids) < MaxItems,
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// GET /comparison
func GetComparison(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := clientToken(c)
		ids, err := loadIDs(c.Request.Context(), rdb, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comparison"})
			return
		}
		respond(c, db, token, ids, nil)
	}
}

// POST /comparison/:product_id
// No-op when the product is already listed or the list is at capacity. The
// first item added flags a one-shot "add another?" prompt for the UI.
func AddToComparison(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		token := clientToken(c)
		ctx := c.Request.Context()
		ids, err := loadIDs(ctx, rdb, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comparison"})
			return
		}

		ids, added := addID(ids, uint(productID))
		if added {
			if err := saveIDs(ctx, rdb, token, ids); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comparison"})
				return
			}
		}
		respond(c, db, token, ids, gin.H{
			"added":           added,
			"prompt_add_more": added && len(ids) == 1,
		})
	}
}

// DELETE /comparison/:product_id
func RemoveFromComparison(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		token := clientToken(c)
		ctx := c.Request.Context()
		ids, err := loadIDs(ctx, rdb, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comparison"})
			return
		}
		ids = removeID(ids, uint(productID))
		if err := saveIDs(ctx, rdb, token, ids); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comparison"})
			return
		}
		respond(c, db, token, ids, nil)
	}
}

// DELETE /comparison
func ClearComparison(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := clientToken(c)
		if err := rdb.Del(c.Request.Context(), listKey(token)).Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear comparison"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "products": []models.Product{}, "can_add_more": true})
	}
}
