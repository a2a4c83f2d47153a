package cache

import (
	"testing"
	"time"
)

// fakeClock lets tests move time by hand.
func fakeClock(c *Cache[string, int]) *time.Time {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }
	return &current
}

func TestCache_HonorsTTL(t *testing.T) {
	c := New[string, int]()
	current := fakeClock(c)

	c.Put("a", 1, time.Minute)
	if got, ok := c.Get("a"); !ok || got != 1 {
		t.Fatalf("Get(a) = %v, %v, want 1, true", got, ok)
	}

	*current = current.Add(59 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Error("entry expired before its ttl")
	}

	*current = current.Add(2 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("entry still served after its ttl")
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New[string, int]()
	fakeClock(c)

	if got, ok := c.Get("missing"); ok || got != 0 {
		t.Errorf("Get(missing) = %v, %v, want 0, false", got, ok)
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := New[string, int]()
	current := fakeClock(c)

	c.Put("a", 1, time.Second)
	*current = current.Add(2 * time.Second)
	c.Put("a", 2, time.Minute)

	if got, ok := c.Get("a"); !ok || got != 2 {
		t.Errorf("Get(a) = %v, %v, want 2, true", got, ok)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestCache_Prune(t *testing.T) {
	c := New[string, int]()
	current := fakeClock(c)

	c.Put("short", 1, time.Second)
	c.Put("long", 2, time.Hour)
	*current = current.Add(time.Minute)

	if got := c.Prune(); got != 1 {
		t.Errorf("Prune() = %d, want 1", got)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("Prune() dropped a live entry")
	}
}
