package caching

import (
	"testing"
	"time"
)

func TestCache_SetThenGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://www.reddit.com/r/golang/top.json?t=month"
	if err := cache.Set(url, []byte(`{"kind": "Listing"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get(url)
	if !ok {
		t.Fatal("Get() ok = false, want hit")
	}
	if got := string(data); got != `{"kind": "Listing"}` {
		t.Errorf("Get() = %q, want cached body", got)
	}
}

func TestCache_MissOnUnknownURL(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("https://www.reddit.com/never-stored"); ok {
		t.Error("Get() ok = true, want miss for unknown URL")
	}
}

func TestCache_ExpiredEntryMisses(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://www.reddit.com/r/golang/top.json"
	if err := cache.Set(url, []byte("stale")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, ok := cache.Get(url); ok {
		t.Error("Get() ok = true, want miss for expired entry")
	}
}

func TestCache_DistinctURLsDoNotCollide(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com/a", []byte("first")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Set("https://example.com/b", []byte("second")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get("https://example.com/a")
	if !ok || string(data) != "first" {
		t.Errorf("Get(a) = %q, %v, want %q", data, ok, "first")
	}
}
