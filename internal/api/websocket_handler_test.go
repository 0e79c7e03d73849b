package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/service/pubsub"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

func newTestWebSocketHandler() *WebSocketHandler {
	testLogger := logger.NewLogger("test")
	return NewWebSocketHandler(testLogger, pubsub.NewRedisPubSub(nil, testLogger))
}

func addClient(h *WebSocketHandler, buildingID string, buffer int) *Client {
	client := &Client{
		buildingID: buildingID,
		send:       make(chan []byte, buffer),
	}
	h.mutex.Lock()
	h.clients[client] = true
	h.buildingClients[buildingID]++
	h.mutex.Unlock()
	return client
}

func TestHandlePubSubMessage_DeliversToSameBuildingOnly(t *testing.T) {
	h := newTestWebSocketHandler()
	towerA := addClient(h, "buildingA", 1)
	towerB := addClient(h, "buildingB", 1)

	h.handlePubSubMessage(&dto.AccessLogResponse{
		ID:           "log1",
		BuildingID:   "buildingA",
		LicensePlate: "ABC123",
	})

	assert.Len(t, towerA.send, 1)
	assert.Empty(t, towerB.send)
}

func TestHandlePubSubMessage_EvictsSlowClient(t *testing.T) {
	h := newTestWebSocketHandler()
	// Unbuffered send channel with no reader: the first delivery attempt
	// finds it full and evicts the client
	slow := addClient(h, "buildingA", 0)

	h.handlePubSubMessage(&dto.AccessLogResponse{
		ID:           "log1",
		BuildingID:   "buildingA",
		LicensePlate: "ABC123",
	})

	h.mutex.RLock()
	_, stillRegistered := h.clients[slow]
	remaining := h.buildingClients["buildingA"]
	h.mutex.RUnlock()

	assert.False(t, stillRegistered)
	assert.Zero(t, remaining)
}

func TestHandlePubSubMessage_ConcurrentBroadcastsWithEviction(t *testing.T) {
	h := newTestWebSocketHandler()
	addClient(h, "buildingA", 0)
	addClient(h, "buildingB", 0)

	// Callbacks for different buildings fire concurrently; both evict
	// their slow client, which mutates the shared maps
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.handlePubSubMessage(&dto.AccessLogResponse{BuildingID: "buildingA", LicensePlate: "ABC123"})
		}()
		go func() {
			defer wg.Done()
			h.handlePubSubMessage(&dto.AccessLogResponse{BuildingID: "buildingB", LicensePlate: "XYZ789"})
		}()
	}
	wg.Wait()

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	assert.Empty(t, h.clients)
	assert.Empty(t, h.buildingClients)
}
