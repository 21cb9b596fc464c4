package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256

	websocketWriteWait  = 10 * time.Second
	websocketPongWait   = 60 * time.Second
	websocketPingPeriod = websocketPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationSubscriber delivers a user's notifications as they are published.
//
//go:generate mockery --name NotificationSubscriber --output ../mocks
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, userID string, callback func(*domain.Notification)) error
	Unsubscribe(userID string)
	Close()
}

type Client struct {
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

// WebSocketHandler pushes notifications to connected users. Each replica
// subscribes to a user's channel while at least one of their sockets is open.
type WebSocketHandler struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	logger      *logger.Logger
	pubsub      NotificationSubscriber
	ctx         context.Context
	cancel      context.CancelFunc
	userClients map[string]int
}

func NewWebSocketHandler(logger *logger.Logger, pubsub NotificationSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
		pubsub:      pubsub,
		ctx:         ctx,
		cancel:      cancel,
		userClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream notifications
// @Description Upgrades to a websocket that receives the caller's notifications as JSON messages
// @Tags notifications
// @Param access_token query string false "Access token when the Authorization header cannot be set"
// @Success 101
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID := c.GetString(string(utils.UserIDKey))
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No user ID found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf("Failed to upgrade connection for user %s: %v", userID, err)
		return
	}

	client := &Client{
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.userClients[client.userID]++

			// Subscribe to the user's channel on their first connection
			if h.userClients[client.userID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.userID, h.handleNotification); err != nil {
					h.logger.Errorf("Failed to subscribe to user %s: %v", client.userID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.userClients[client.userID]--
				if h.userClients[client.userID] == 0 {
					h.pubsub.Unsubscribe(client.userID)
					delete(h.userClients, client.userID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handleNotification forwards a published notification to the recipient's sockets.
// Slow clients miss messages rather than block the subscription.
func (h *WebSocketHandler) handleNotification(notification *domain.Notification) {
	message, err := json.Marshal(notification)
	if err != nil {
		h.logger.Errorf("Error marshaling notification: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.userID != notification.UserID {
			continue
		}
		select {
		case client.send <- message:
		default:
			h.logger.Warnf("Dropping notification %s for slow client of user %s", notification.ID, client.userID)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	ticker := time.NewTicker(websocketPingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteWait))
			if !ok {
				// Channel was closed, send close message
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(websocketPongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(websocketPongWait))
	})

	for {
		// Clients are not expected to send anything; reading drives pong handling.
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("Unexpected close error for user %s: %v", client.userID, err)
			}
			return
		}
	}
}
