package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

const (
	channelPrefix = "access_logs:"
)

// RedisPubSub fans freshly recorded access attempts out to websocket
// subscribers, one channel per building so streams never cross tenants.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // building ID -> subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(buildingID string) string {
	return channelPrefix + buildingID
}

// Publish publishes an access attempt to the building's channel.
func (ps *RedisPubSub) Publish(ctx context.Context, log *dto.AccessLogResponse) error {
	message, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal access log: %w", err)
	}

	channel := ps.getChannelName(log.BuildingID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to access attempts for a specific building.
func (ps *RedisPubSub) Subscribe(ctx context.Context, buildingID string, callback func(*dto.AccessLogResponse)) error {
	channel := ps.getChannelName(buildingID)

	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[buildingID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to building channel: %s", channel)
		return nil
	}

	pubsub := ps.client.Subscribe(ctx, channel)

	ps.subscriberMu.Lock()
	ps.subscribers[buildingID] = pubsub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for building channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, buildingID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var log dto.AccessLogResponse
				if err := json.Unmarshal([]byte(msg.Payload), &log); err != nil {
					ps.logger.Errorf("Failed to unmarshal access log from channel %s: %v", channel, err)
					continue
				}
				callback(&log)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to building channel: %s", channel)
	return nil
}

// Unsubscribe removes the subscription for a building.
func (ps *RedisPubSub) Unsubscribe(buildingID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[buildingID]; exists {
		pubsub.Close()
		delete(ps.subscribers, buildingID)
		ps.logger.Infof("Unsubscribed from building channel: %s", ps.getChannelName(buildingID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for buildingID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, buildingID)
		ps.logger.Infof("Closed subscription for building channel: %s", ps.getChannelName(buildingID))
	}
}
