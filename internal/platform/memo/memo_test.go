package memo

import "testing"

func TestCache_RecomputesOnFingerprintChange(t *testing.T) {
	cache := NewCache()

	calls := 0
	compute := func() any {
		calls++
		return calls
	}

	if got := cache.Get("home", "rev-1", compute); got != 1 {
		t.Fatalf("first compute: got %v", got)
	}
	if got := cache.Get("home", "rev-1", compute); got != 1 {
		t.Fatalf("expected cached value, got %v", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 compute call, got %d", calls)
	}

	if got := cache.Get("home", "rev-2", compute); got != 2 {
		t.Fatalf("expected recompute on new fingerprint, got %v", got)
	}
}

func TestCache_KeysAreIndependent(t *testing.T) {
	cache := NewCache()

	homeCalls := 0
	awayCalls := 0

	cache.Get("home", "rev-1", func() any { homeCalls++; return homeCalls })
	cache.Get("away", "rev-1", func() any { awayCalls++; return awayCalls })

	// Bumping home's inputs must not evict away's entry.
	cache.Get("home", "rev-2", func() any { homeCalls++; return homeCalls })
	cache.Get("away", "rev-1", func() any { awayCalls++; return awayCalls })

	if homeCalls != 2 {
		t.Fatalf("expected 2 home computes, got %d", homeCalls)
	}
	if awayCalls != 1 {
		t.Fatalf("expected 1 away compute, got %d", awayCalls)
	}
}

func TestCache_InvalidatePrefix(t *testing.T) {
	cache := NewCache()

	cache.Get("game-1:home", "rev-1", func() any { return "a" })
	cache.Get("game-1:away", "rev-1", func() any { return "b" })
	cache.Get("game-2:home", "rev-1", func() any { return "c" })

	cache.InvalidatePrefix("game-1:")

	if cache.Len() != 1 {
		t.Fatalf("expected 1 entry after prefix invalidation, got %d", cache.Len())
	}
}
