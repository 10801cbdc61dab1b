package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	NotifierLog   = "log"
	NotifierNeo4j = "neo4j"
	NotifierRedis = "redis"
)

// Config holds all application configuration.
type Config struct {
	Port            int
	LogLevel        string
	LogJSON         bool
	Notifier        string
	NotifyTimeout   time.Duration
	ShutdownTimeout time.Duration

	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	RedisURL       string
	RedisNotifyKey string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 8080),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		LogJSON:         getEnvBool("LOG_JSON", false),
		Notifier:        getEnvString("NOTIFIER", NotifierLog),
		NotifyTimeout:   getEnvDuration("NOTIFY_TIMEOUT", 5*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Neo4jURI:        getEnvString("NEO4J_URI", "neo4j://localhost:7687"),
		Neo4jUser:       getEnvString("NEO4J_USER", "neo4j"),
		Neo4jPassword:   getEnvString("NEO4J_PASSWORD", "password"),
		RedisURL:        getEnvString("REDIS_URL", "redis://localhost:6379/0"),
		RedisNotifyKey:  getEnvString("REDIS_NOTIFY_KEY", "todo:notifications"),
	}
}

// Address returns the listen address in :port form.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks and normalizes the configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}

	c.Notifier = strings.ToLower(strings.TrimSpace(c.Notifier))
	switch c.Notifier {
	case NotifierLog:
	case NotifierNeo4j:
		if c.Neo4jURI == "" {
			return fmt.Errorf("neo4j URI cannot be empty when the neo4j notifier is selected")
		}
	case NotifierRedis:
		if c.RedisURL == "" || c.RedisNotifyKey == "" {
			return fmt.Errorf("redis URL and key are required when the redis notifier is selected")
		}
	default:
		return fmt.Errorf("unknown notifier %q: must be log, neo4j or redis", c.Notifier)
	}

	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("invalid notify timeout %v: must be positive", c.NotifyTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout)
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
