package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisCache(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis test. Set REDIS_ADDR environment variable")
	}
	ctx := context.Background()
	r, err := NewRedis(ctx, &redis.Options{Addr: addr})
	if err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}
	defer r.Close()

	prefix := Prefix("folio-test", time.Now().Format("150405.000000"))
	if err = r.Set(ctx, prefix+"a", entry{ID: 1, Title: "a"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err = r.Set(ctx, prefix+"b", entry{ID: 2, Title: "b"}, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var out entry
	found, err := r.Get(ctx, prefix+"a", &out)
	if err != nil || !found || out.Title != "a" {
		t.Fatalf("unexpected result: found=%v err=%v value=%+v", found, err, out)
	}
	if err = r.Clear(ctx, prefix); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if found, _ = r.Get(ctx, prefix+"b", &out); found {
		t.Fatal("expected cleared key to be gone")
	}
}
