package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

const (
	channelPrefix = "notifications:"
)

// RedisPubSub fans notifications out to API replicas, one channel per user.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of user ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(userID string) string {
	return channelPrefix + userID
}

// Publish publishes a notification to its recipient's channel
func (ps *RedisPubSub) Publish(ctx context.Context, notification *domain.Notification) error {
	message, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	channel := ps.getChannelName(notification.UserID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe delivers a user's notifications to callback until ctx ends or
// Unsubscribe is called.
func (ps *RedisPubSub) Subscribe(ctx context.Context, userID string, callback func(*domain.Notification)) error {
	channel := ps.getChannelName(userID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[userID]; exists {
		ps.subscriberMu.Unlock()
		ps.logger.Infof("Already subscribed to user channel: %s", channel)
		return nil
	}
	pubsub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[userID] = pubsub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for user channel: %s", channel)
			ps.subscriberMu.Lock()
			if current, ok := ps.subscribers[userID]; ok && current == pubsub {
				delete(ps.subscribers, userID)
			}
			ps.subscriberMu.Unlock()
			pubsub.Close()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var notification domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &notification); err != nil {
					ps.logger.Errorf("Failed to unmarshal notification from channel %s: %v", channel, err)
					continue
				}
				callback(&notification)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to user channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for a user
func (ps *RedisPubSub) Unsubscribe(userID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[userID]; exists {
		pubsub.Close()
		delete(ps.subscribers, userID)
		ps.logger.Infof("Unsubscribed from user channel: %s", ps.getChannelName(userID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for userID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, userID)
		ps.logger.Infof("Closed subscription for user channel: %s", ps.getChannelName(userID))
	}
}
