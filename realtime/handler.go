package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Terry-Diana/china-shop-sub000/auth"
	"github.com/Terry-Diana/china-shop-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades GET /ws?token=... and keeps the connection registered
// until the client goes away. Admin tokens additionally subscribe to all
// order events.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.ParseToken(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		hub.Register(claims.UserID, conn)
		if models.AdminRole(claims.Role).Valid() {
			hub.RegisterAdmin(claims.UserID, conn)
		}
		defer hub.Unregister(claims.UserID, conn)

		// Drain client frames; the read error is the disconnect signal.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
