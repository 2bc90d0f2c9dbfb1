package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHash(t *testing.T) {
	h := Hash([]byte("hello"))
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("hello")) {
		t.Error("hash not deterministic")
	}
	if h == Hash([]byte("world")) {
		t.Error("different inputs produced the same hash")
	}
}

func TestKey(t *testing.T) {
	k := Key("markup", "abc", 1)
	if !strings.HasPrefix(k, "markup:") {
		t.Errorf("key = %q, want markup: prefix", k)
	}
	if len(k) != len("markup:")+64 {
		t.Errorf("key length = %d", len(k))
	}
	if k != Key("markup", "abc", 1) {
		t.Error("key not deterministic")
	}
	if k == Key("markup", "abc", 2) {
		t.Error("different parts produced the same key")
	}
	if k == Key("artifact", "abc", 1) {
		t.Error("different prefixes produced the same key")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("null cache should never hit")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
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

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheStageLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "markup:abc", []byte("typst"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "artifact:abc", []byte("png"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "unprefixed", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	for _, stage := range []string{"markup", "artifact", "misc"} {
		entries, err := os.ReadDir(filepath.Join(dir, stage))
		if err != nil || len(entries) == 0 {
			t.Errorf("stage dir %q: entries=%d err=%v", stage, len(entries), err)
		}
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil || !found {
		t.Errorf("found=%v err=%v, want hit", found, err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	opts := MarkupKeyOpts{Pragmas: "all", InitMode: "state", Simplify: true}
	if k.MarkupKey("h", opts) != k.MarkupKey("h", opts) {
		t.Error("markup key not deterministic")
	}
	if k.MarkupKey("h", opts) == k.MarkupKey("h2", opts) {
		t.Error("circuit hash ignored")
	}
	if k.MarkupKey("h", opts) == k.MarkupKey("h", MarkupKeyOpts{Pragmas: "none", InitMode: "state", Simplify: true}) {
		t.Error("pragmas option ignored")
	}

	aOpts := ArtifactKeyOpts{Pragmas: "all", InitMode: "state", PixelsPerPoint: 3}
	if k.ArtifactKey("h", aOpts) == k.ArtifactKey("h", ArtifactKeyOpts{Pragmas: "all", InitMode: "state", PixelsPerPoint: 4}) {
		t.Error("pixel density ignored")
	}
	if strings.HasPrefix(k.ArtifactKey("h", aOpts), "markup:") {
		t.Error("artifact keys must not collide with markup keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(nil, "qcdraw:")
	key := k.MarkupKey("h", MarkupKeyOpts{})
	if !strings.HasPrefix(key, "qcdraw:markup:") {
		t.Errorf("key = %q, want qcdraw:markup: prefix", key)
	}

	inner := NewDefaultKeyer()
	if key != "qcdraw:"+inner.MarkupKey("h", MarkupKeyOpts{}) {
		t.Error("scoped key must wrap the inner key unchanged")
	}
}
