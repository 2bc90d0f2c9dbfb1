package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	s := miniredis.RunT(t)
	c := NewRedisCache(s.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	_, found, err := c.Get(ctx, "missing")
	if err != nil || found {
		t.Fatalf("miss: found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, found, err := c.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("hit: found=%v err=%v", found, err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, found, _ = c.Get(ctx, "k")
	if found {
		t.Error("deleted key still present")
	}
}

func TestRedisCacheExpiration(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	c := NewRedisCache(s.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.FastForward(2 * time.Minute)

	_, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expired entry should be a miss")
	}
}

func TestRedisCacheZeroTTL(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil || !found {
		t.Errorf("found=%v err=%v, want hit", found, err)
	}
}
