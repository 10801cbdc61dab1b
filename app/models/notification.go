package models

import "time"

// NotificationEvent is what the notifiers hand to downstream consumers.
type NotificationEvent struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	TaskID int       `json:"task_id"`
	UserID int       `json:"user_id"`
	SentAt time.Time `json:"sent_at"`
}

const EventTaskCompleted = "task.completed"
