package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

// NotificationHub fans stored notifications out to connected websocket
// clients. Delivery is best effort: a full buffer or a dead connection never
// blocks the business operation that produced the notification.
type NotificationHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Notification
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Notification, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(n); err != nil {
					log.Println("ws write failed, dropping client:", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish enqueues a notification for broadcast without blocking the caller.
func (h *NotificationHub) Publish(n *entity.Notification) {
	select {
	case h.broadcast <- n:
	default:
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. Clients are read-only listeners.
func (h *NotificationHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
