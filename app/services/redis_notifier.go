package services

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-notify/app/models"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier pushes notification events onto a Redis list.
type RedisNotifier struct {
	client *redis.Client
	key    string
}

var _ NotificationService = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, key string) *RedisNotifier {
	return &RedisNotifier{client: client, key: key}
}

// NotifyUserTaskCompleted LPUSHes the event; consumers RPOP for FIFO order.
func (n *RedisNotifier) NotifyUserTaskCompleted(ctx context.Context, taskID, userID int) error {
	data, err := json.Marshal(newEvent(taskID, userID))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.client.LPush(ctx, n.key, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification for task %d: %w", taskID, err)
	}

	return nil
}

// Pending returns the oldest queued event without removing it.
func (n *RedisNotifier) Pending(ctx context.Context) (*models.NotificationEvent, error) {
	raw, err := n.client.LIndex(ctx, n.key, -1).Result()
	if err != nil {
		return nil, err
	}

	var event models.NotificationEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return &event, nil
}
