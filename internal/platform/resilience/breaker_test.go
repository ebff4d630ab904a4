package resilience

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected ErrBreakerOpen, got %v", err)
	}
}

func TestBreaker_SuccessResetsFailureRun(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, OpenTimeout: time.Minute})

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if err := b.Allow(); err != nil {
		t.Fatalf("breaker should stay closed: %v", err)
	}
}

func TestBreaker_ProbesAfterOpenTimeout(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, OpenTimeout: 10 * time.Second})
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	if b.State() != BreakerOpen {
		t.Fatalf("expected open, got %s", b.State())
	}

	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to be allowed: %v", err)
	}
	// Second concurrent probe is rejected until the first settles.
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected single probe, got %v", err)
	}

	b.RecordSuccess()
	if b.State() != BreakerClosed {
		t.Fatalf("expected closed after probe success, got %s", b.State())
	}
}

func TestGroup_DeduplicatesConcurrentCalls(t *testing.T) {
	var g Group[int]
	var calls int
	var mu sync.Mutex
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 4)
	shared := make([]bool, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, err, wasShared := g.Do("hydrate:game-1", func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				<-release
				return 42, nil
			})
			if err != nil {
				panic(fmt.Sprintf("unexpected error: %v", err))
			}
			results[i] = val
			shared[i] = wasShared
		}(i)
	}

	// Give goroutines a chance to pile up behind the first call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	sharedCount := 0
	for i := range results {
		if results[i] != 42 {
			t.Fatalf("result %d: got %d", i, results[i])
		}
		if shared[i] {
			sharedCount++
		}
	}
	if sharedCount != 3 {
		t.Fatalf("expected 3 shared results, got %d", sharedCount)
	}
}
