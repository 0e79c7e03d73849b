package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/middleware"
	"github.com/khangtran94/parking-alpr-api/internal/service/pubsub"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn       *websocket.Conn
	buildingID string
	send       chan []byte
}

// WebSocketHandler streams access attempts to gate dashboards in real
// time. Clients only ever see attempts for their own building.
type WebSocketHandler struct {
	clients         map[*Client]bool
	register        chan *Client
	unregister      chan *Client
	mutex           sync.RWMutex
	logger          *logger.Logger
	pubsub          *pubsub.RedisPubSub
	ctx             context.Context
	cancel          context.CancelFunc
	buildingClients map[string]int // Count of clients per building
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:         make(map[*Client]bool),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		logger:          logger,
		pubsub:          pubsub,
		ctx:             ctx,
		cancel:          cancel,
		buildingClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream access attempts
// @Description Upgrade to a WebSocket that receives every access attempt recorded for the authenticated building.
// @Tags logs
// @Success 101 "Switching Protocols"
// @Failure 401 {object} dto.Error
// @Security ApiKeyAuth
// @Router /logs/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No building found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:       conn,
		buildingID: building.ID,
		send:       make(chan []byte, websocketSendChannelBufferSize),
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
			h.buildingClients[client.buildingID]++

			// Subscribe to the building's channel if this is the first client
			if h.buildingClients[client.buildingID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.buildingID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to building %s: %v", client.buildingID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.buildingClients[client.buildingID]--

				// Unsubscribe if no more clients for this building
				if h.buildingClients[client.buildingID] == 0 {
					h.pubsub.Unsubscribe(client.buildingID)
					delete(h.buildingClients, client.buildingID)
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

// handlePubSubMessage handles attempts received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(log *dto.AccessLogResponse) {
	message, err := json.Marshal(log)
	if err != nil {
		h.logger.Errorf("Error marshaling access log: %v", err)
		return
	}

	// Write lock: the slow-client eviction below mutates the maps, and
	// callbacks for different buildings fire concurrently.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.buildingID == log.BuildingID {
			select {
			case client.send <- message:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.buildingClients[client.buildingID]--

				if h.buildingClients[client.buildingID] == 0 {
					h.pubsub.Unsubscribe(client.buildingID)
					delete(h.buildingClients, client.buildingID)
				}
			}
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.buildingID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.buildingID, err)
			}
			break
		}

		// Handle any actual messages from client (though we don't expect any)
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.buildingID, string(message))
		}
	}
}

// BroadcastAttempt publishes an attempt to all connected clients of the
// same building, across every API instance.
func (h *WebSocketHandler) BroadcastAttempt(log *dto.AccessLogResponse) {
	if err := h.pubsub.Publish(h.ctx, log); err != nil {
		h.logger.Errorf("Failed to publish access log: %v", err)
	}
}
