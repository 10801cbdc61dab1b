package services

import (
	"context"
	"time"

	"todo-notify/app/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotificationService informs a user that one of their tasks is done.
type NotificationService interface {
	NotifyUserTaskCompleted(ctx context.Context, taskID, userID int) error
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	log logrus.FieldLogger
}

var _ NotificationService = (*LogNotifier)(nil)

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyUserTaskCompleted(ctx context.Context, taskID, userID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := newEvent(taskID, userID)
	n.log.WithFields(logrus.Fields{
		"notifier":        "log",
		"notification_id": event.ID,
		"task_id":         event.TaskID,
		"user_id":         event.UserID,
	}).Info("user notified of completed task")

	return nil
}

func newEvent(taskID, userID int) models.NotificationEvent {
	return models.NotificationEvent{
		ID:     uuid.New().String(),
		Type:   models.EventTaskCompleted,
		TaskID: taskID,
		UserID: userID,
		SentAt: time.Now().UTC(),
	}
}
