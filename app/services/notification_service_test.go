package services

import (
	"context"
	"testing"

	"todo-notify/app/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_NotifyUserTaskCompleted(t *testing.T) {
	log, hook := test.NewNullLogger()
	n := NewLogNotifier(log)

	require.NoError(t, n.NotifyUserTaskCompleted(context.Background(), 7, 1))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 7, entry.Data["task_id"])
	assert.Equal(t, 1, entry.Data["user_id"])
	assert.NotEmpty(t, entry.Data["notification_id"])
}

func TestLogNotifier_CancelledContext(t *testing.T) {
	log, hook := test.NewNullLogger()
	n := NewLogNotifier(log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.NotifyUserTaskCompleted(ctx, 1, 1), context.Canceled)
	assert.Empty(t, hook.AllEntries())
}

func TestNewEvent(t *testing.T) {
	event := newEvent(3, 1)

	assert.Equal(t, models.EventTaskCompleted, event.Type)
	assert.Equal(t, 3, event.TaskID)
	assert.Equal(t, 1, event.UserID)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.SentAt.IsZero())
	assert.NotEqual(t, event.ID, newEvent(3, 1).ID)
}
