package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultHTTPAddr = ":8080"
const defaultAdminChannelID = "AtmAdmin"
const defaultAdminChannelKey = "AtmAdminKey001"
const defaultShutdownTimeout = 10 * time.Second
const defaultSessionIdleTimeout = 5 * time.Minute

type Config struct {
	HTTPAddr           string
	AdminChannelID     string
	AdminKeyHash       []byte
	ShutdownTimeout    time.Duration
	SessionIdleTimeout time.Duration
}

func Load() (Config, error) {
	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	adminChannelID := strings.TrimSpace(os.Getenv("ADMIN_CHANNEL_ID"))
	if adminChannelID == "" {
		adminChannelID = defaultAdminChannelID
	}

	adminChannelKey := strings.TrimSpace(os.Getenv("ADMIN_CHANNEL_KEY"))
	if adminChannelKey == "" {
		adminChannelKey = defaultAdminChannelKey
	}

	shutdownTimeout, err := durationFromEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return Config{}, err
	}

	sessionIdleTimeout, err := durationFromEnv("SESSION_IDLE_TIMEOUT", defaultSessionIdleTimeout)
	if err != nil {
		return Config{}, err
	}

	adminKeyHash, err := HashAdminKey(adminChannelKey)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPAddr:           httpAddr,
		AdminChannelID:     adminChannelID,
		AdminKeyHash:       adminKeyHash,
		ShutdownTimeout:    shutdownTimeout,
		SessionIdleTimeout: sessionIdleTimeout,
	}, nil
}

// HashAdminKey keeps the plain admin key out of the running config.
func HashAdminKey(key string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin channel key: %w", err)
	}

	return hashed, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}

	return parsed, nil
}
