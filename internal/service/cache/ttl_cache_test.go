package cache

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", "v", time.Minute)
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected hit, got %v %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("unexpected hit")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestTTLCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", "v", 0)
	time.Sleep(10 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("zero-ttl entry should persist")
	}
}

func TestTTLCacheBytes(t *testing.T) {
	c := NewTTLCache()
	if err := c.SetBytes("b", []byte("data"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, ok, err := c.GetBytes("b")
	if err != nil || !ok || string(b) != "data" {
		t.Fatalf("unexpected: %q %v %v", b, ok, err)
	}

	c.Set("notbytes", 7, time.Minute)
	if _, ok, _ := c.GetBytes("notbytes"); ok {
		t.Fatal("non-byte value should miss on GetBytes")
	}
}

func TestTTLCachePurge(t *testing.T) {
	c := NewTTLCache()
	c.Set("old", 1, 5*time.Millisecond)
	c.Set("fresh", 2, time.Minute)
	time.Sleep(10 * time.Millisecond)
	if remaining := c.Purge(); remaining != 1 {
		t.Fatalf("expected 1 remaining after purge, got %d", remaining)
	}
}
