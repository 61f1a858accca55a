package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/Terry-Diana/china-shop-sub000/auth"
	"github.com/Terry-Diana/china-shop-sub000/models"
)

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestPublishReachesOnlyTheAffectedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	token1, err := auth.IssueUserToken(models.User{ID: 1})
	require.NoError(t, err)
	token2, err := auth.IssueUserToken(models.User{ID: 2})
	require.NoError(t, err)

	conn1 := dial(t, srv, token1)
	defer conn1.Close()
	conn2 := dial(t, srv, token2)
	defer conn2.Close()

	// wait for both registrations
	require.Eventually(t, func() bool {
		return hub.Subscribers(1) == 1 && hub.Subscribers(2) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Publish(Event{Table: "cart_items", Action: ActionInsert, UserID: 1, ProductID: 10})

	ev := readEvent(t, conn1)
	require.Equal(t, "cart_items", ev.Table)
	require.Equal(t, ActionInsert, ev.Action)
	require.Equal(t, uint(10), ev.ProductID)

	// user 2 must not receive user 1's cart event
	require.NoError(t, conn2.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = conn2.ReadMessage()
	require.Error(t, err)
}

func TestAdminsReceiveAllOrderEvents(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	adminToken, err := auth.IssueAdminToken(models.Admin{ID: 99, Role: models.RoleAdmin})
	require.NoError(t, err)
	conn := dial(t, srv, adminToken)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.Subscribers(99) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// another shopper's order still reaches the admin feed
	hub.Publish(Event{Table: "orders", Action: ActionInsert, UserID: 5, OrderID: 77})

	ev := readEvent(t, conn)
	require.Equal(t, "orders", ev.Table)
	require.Equal(t, uint(77), ev.OrderID)
}

func TestRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublishWithNoSubscribersIsSafe(t *testing.T) {
	hub := NewHub()
	hub.Publish(Event{Table: "cart_items", Action: ActionDelete, UserID: 123})
	require.Zero(t, hub.Subscribers(123))
}

// serverConn hands back the server side of a live websocket so a test can
// register and then kill it.
func serverConn(t *testing.T) *websocket.Conn {
	t.Helper()
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- c
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case c := <-connCh:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("server connection never arrived")
		return nil
	}
}

func TestDeadAdminConnIsFullyUnregistered(t *testing.T) {
	hub := NewHub()

	conn := serverConn(t)
	hub.Register(2, conn)
	hub.RegisterAdmin(2, conn)
	require.NoError(t, conn.Close())

	// an order event for a different shopper reaches the admin feed; the
	// failed write must also clear the connection from its own user entry
	hub.Publish(Event{Table: "orders", Action: ActionInsert, UserID: 1, OrderID: 7})

	require.Zero(t, hub.Subscribers(2))

	hub.mu.RLock()
	_, stillAdmin := hub.admins[conn]
	hub.mu.RUnlock()
	require.False(t, stillAdmin)
}
