package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	models "trendcheck/internal/domain/models"
	xlogger "trendcheck/pkg/logger"
)

const streamWriteTimeout = 5 * time.Second

// streamClient serializes writes to one connection. The store's notify hook
// fires from every poll goroutine, and gorilla/websocket allows only one
// concurrent writer per connection.
type streamClient struct {
	conn *websocket.Conn

	mu sync.Mutex
}

func (c *streamClient) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return c.conn.WriteJSON(v)
}

// StreamHub pushes newly cached articles to WebSocket subscribers. It is
// wired as the article store's notify hook, so every first-seen article
// reaches connected clients once.
type StreamHub struct {
	logger   *xlogger.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]*streamClient
}

func NewStreamHub(logger *xlogger.Logger) *StreamHub {
	return &StreamHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]*streamClient),
	}
}

func (h *StreamHub) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/news/stream", h.Stream)
}

func (h *StreamHub) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.conns[conn] = &streamClient{conn: conn}
	n := len(h.conns)
	h.mu.Unlock()
	h.logger.Info("stream client connected", xlogger.Int("clients", n))

	// client messages are ignored; the read loop only detects disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.drop(conn)
	return nil
}

// Broadcast sends each article to every subscriber, dropping connections
// that fail to accept the write in time. Safe for concurrent callers.
func (h *StreamHub) Broadcast(articles []*models.Article) {
	h.mu.Lock()
	clients := make([]*streamClient, 0, len(h.conns))
	for _, cl := range h.conns {
		clients = append(clients, cl)
	}
	h.mu.Unlock()

	for _, cl := range clients {
		for _, a := range articles {
			if err := cl.send(a); err != nil {
				h.drop(cl.conn)
				break
			}
		}
	}
}

// Clients reports the current subscriber count.
func (h *StreamHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *StreamHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
		h.logger.Info("stream client disconnected")
	}
}
