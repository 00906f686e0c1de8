package caching

import (
	"testing"
	"time"
)

func TestCache_RoundTrip(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://example.com/solar"
	entry := &Entry{FinalURL: "https://example.com/solar-panels", HTML: "<html><body>solar</body></html>"}
	if err := cache.Set(url, entry); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get(url)
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if got.FinalURL != entry.FinalURL {
		t.Errorf("FinalURL = %q, want %q", got.FinalURL, entry.FinalURL)
	}
	if got.HTML != entry.HTML {
		t.Errorf("HTML = %q, want %q", got.HTML, entry.HTML)
	}
}

func TestCache_Miss(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("https://example.com/unseen"); ok {
		t.Error("Get() hit, want miss")
	}
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	cache, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://example.com"
	if err := cache.Set(url, &Entry{HTML: "<html></html>"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := cache.Get(url); !ok {
		t.Error("Get() miss with zero TTL, want hit")
	}
}

func TestCache_Expiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := "https://example.com"
	if err := cache.Set(url, &Entry{HTML: "<html></html>"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok := cache.Get(url); ok {
		t.Error("Get() hit past TTL, want miss")
	}
}
