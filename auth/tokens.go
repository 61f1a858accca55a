package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

var signingKey []byte

// Init sets the key used to sign and verify all tokens. main calls this once
// with the configured secret; until then the JWT_SECRET env var is read
// directly, which keeps tests self-contained.
func Init(secret string) {
	signingKey = []byte(secret)
}

// Claims carries the identity placed in gin context by the middleware.
type Claims struct {
	UserID uint
	Email  string
	Role   string // "user", "admin", "super_admin"
}

func secret() []byte {
	if len(signingKey) > 0 {
		return signingKey
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueUserToken signs a shopper token.
func IssueUserToken(user models.User) (string, error) {
	return sign(jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    "user",
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
}

// IssueAdminToken signs a back-office token carrying the admin role.
func IssueAdminToken(admin models.Admin) (string, error) {
	return sign(jwt.MapClaims{
		"user_id": admin.ID,
		"email":   admin.Email,
		"role":    string(admin.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
}

func sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken validates a token string and extracts its claims.
func ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	id, ok := mc["user_id"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)

	return Claims{UserID: uint(id), Email: email, Role: role}, nil
}
