package cache

import (
	"context"
	"os"
	"testing"

	"github.com/Douglascrc/AutoFlex/pkg/config"
)

func redisConfig(url string) *config.Config {
	return &config.Config{RedisURL: url}
}

func TestNewRedisClient_BadInput(t *testing.T) {
	t.Run("malformed URL", func(t *testing.T) {
		if _, err := NewRedisClient(redisConfig("not-a-valid-url")); err == nil {
			t.Fatal("expected error for invalid URL, got nil")
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		if _, err := NewRedisClient(redisConfig("redis://localhost:19999")); err == nil {
			t.Fatal("expected error when Redis is unreachable, got nil")
		}
	})
}

// TestRedisIntegration exercises a live Redis; set REDIS_URL to enable.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	newClient := func(t *testing.T) *RedisClient {
		t.Helper()
		rc, err := NewRedisClient(redisConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return rc
	}

	t.Run("connects and pings", func(t *testing.T) {
		rc := newClient(t)
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
		if rc.Client() == nil {
			t.Fatal("expected non-nil underlying client")
		}
	})

	t.Run("close succeeds", func(t *testing.T) {
		rc := newClient(t)
		if err := rc.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	})
}
