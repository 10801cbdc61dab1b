package main

import (
	"context"
	"testing"

	"todo-notify/app/config"
	"todo-notify/app/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier_DefaultIsLog(t *testing.T) {
	cfg := &config.Config{Notifier: config.NotifierLog}

	notifier, closeFn, err := newNotifier(context.Background(), cfg, logrus.New())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &services.LogNotifier{}, notifier)
}

func TestNewNotifier_RedisBadURL(t *testing.T) {
	cfg := &config.Config{Notifier: config.NotifierRedis, RedisURL: "invalid://url", RedisNotifyKey: "k"}

	_, _, err := newNotifier(context.Background(), cfg, logrus.New())
	assert.ErrorContains(t, err, "invalid Redis URL")
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()

	require.NoError(t, cmd.Flags().Parse([]string{"--port", "9999", "--notifier", "redis", "--log-level", "debug", "--json"}))

	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 9999, port)

	notifier, err := cmd.Flags().GetString("notifier")
	require.NoError(t, err)
	assert.Equal(t, "redis", notifier)
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--notifier", "carrier-pigeon"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "unknown notifier")
}
