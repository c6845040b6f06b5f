package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// SetupTestRedis connects to a local Redis for repository tests, using a
// dedicated database so cleanup can flush it safely. Skips the test when no
// Redis is reachable.
func SetupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("test redis not available: %v", err)
	}

	return client
}

// CleanupTestRedis flushes the test database and closes the client.
func CleanupTestRedis(t *testing.T, client *redis.Client) {
	if client == nil {
		return
	}

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Logf("failed to flush test redis: %v", err)
	}

	client.Close()
}
