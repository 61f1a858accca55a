package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Terry-Diana/china-shop-sub000/auth"
	"github.com/Terry-Diana/china-shop-sub000/models"
)

// ValidateToken guards shopper routes. On success the user id and role are
// placed in the gin context under "user_id" / "role".
func ValidateToken(c *gin.Context) {
	claims, err := parseAuthHeader(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.Set("user_id", claims.UserID)
	c.Set("role", claims.Role)
	c.Next()
}

// RequireAdmin guards back-office routes: the token's role must be a valid
// admin role. The typed role is stored under "admin_role" for capability
// checks further in.
func RequireAdmin(c *gin.Context) {
	claims, err := parseAuthHeader(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	role := models.AdminRole(claims.Role)
	if !role.Valid() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Set("admin_id", claims.UserID)
	c.Set("admin_role", role)
	c.Next()
}

func parseAuthHeader(c *gin.Context) (auth.Claims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	// Accept both raw tokens and the Bearer convention.
	tokenString := strings.TrimPrefix(header, "Bearer ")
	return auth.ParseToken(tokenString)
}

// AdminRole pulls the typed role set by RequireAdmin.
func AdminRole(c *gin.Context) models.AdminRole {
	if v, ok := c.Get("admin_role"); ok {
		return v.(models.AdminRole)
	}
	return ""
}

// UserID pulls the shopper id set by ValidateToken.
func UserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
