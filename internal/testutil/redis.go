//go:build integration

// Package testutil provides helpers for tests that need a running
// Redis, plus canned fixtures shared by unit tests.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redis/v8"
)

// RedisAddr returns the address of the Redis instance integration
// tests run against. Override with SONICMON_REDIS_ADDR.
func RedisAddr() string {
	if addr := os.Getenv("SONICMON_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// FlushDB flushes a specific Redis database.
func FlushDB(t *testing.T, addr string, db int) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flushing DB %d: %v", db, err)
	}
}

// SeedEntries writes hash entries into a specific Redis database. Keys
// are used verbatim, so callers control the table separator (":" for
// APPL_DB tables, "|" for CONFIG_DB and STATE_DB).
func SeedEntries(t *testing.T, addr string, db int, entries map[string]map[string]string) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	ctx := context.Background()
	for key, fields := range entries {
		args := make([]interface{}, 0, len(fields)*2)
		for k, v := range fields {
			args = append(args, k, v)
		}
		if err := client.HSet(ctx, key, args...).Err(); err != nil {
			t.Fatalf("seeding %s: %v", key, err)
		}
	}
}

// DeleteEntry removes a key from a specific Redis database.
func DeleteEntry(t *testing.T, addr string, db int, key string) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	if err := client.Del(context.Background(), key).Err(); err != nil {
		t.Fatalf("deleting %s: %v", key, err)
	}
}
