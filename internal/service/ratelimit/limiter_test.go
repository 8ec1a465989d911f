package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesBurst(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("client", 3, 0.1) {
			t.Fatalf("request %d within burst should pass", i)
		}
	}
	if l.Allow("client", 3, 0.1) {
		t.Fatal("request beyond burst should be limited")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New()
	if !l.Allow("client", 1, 50) {
		t.Fatal("first request should pass")
	}
	if l.Allow("client", 1, 50) {
		t.Fatal("bucket should be empty")
	}
	time.Sleep(50 * time.Millisecond)
	if !l.Allow("client", 1, 50) {
		t.Fatal("bucket should have refilled")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0.1) {
		t.Fatal("first key should pass")
	}
	if !l.Allow("b", 1, 0.1) {
		t.Fatal("second key should have its own bucket")
	}
}
