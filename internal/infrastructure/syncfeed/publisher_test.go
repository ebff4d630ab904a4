package syncfeed

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
	"github.com/dugoutlabs/dugout/internal/platform/resilience"
)

func newPublisher(t *testing.T, url string, breaker resilience.BreakerConfig) *WebhookPublisher {
	t.Helper()
	p, err := NewWebhookPublisher(Config{
		URL:     url,
		Token:   "feed-token",
		Timeout: 2 * time.Second,
		Breaker: breaker,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	return p
}

func TestWebhookPublisher_PostsEvent(t *testing.T) {
	t.Parallel()

	var got syncevent.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer feed-token" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if kind := r.Header.Get("X-Sync-Event"); kind != string(syncevent.KindRosterAdd) {
			t.Errorf("unexpected event header %q", kind)
		}
		body, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(body, &got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := newPublisher(t, srv.URL, resilience.BreakerConfig{})

	evt := syncevent.Event{
		Kind:     syncevent.KindRosterAdd,
		GameID:   "game-1",
		TeamID:   "team-9",
		PlayerID: "p-4",
	}
	if err := p.Publish(t.Context(), evt); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got.Kind != evt.Kind || got.GameID != evt.GameID || got.PlayerID != evt.PlayerID {
		t.Fatalf("delivered event mismatch: %+v", got)
	}
}

func TestWebhookPublisher_TransientVsPermanent(t *testing.T) {
	t.Parallel()

	var status atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	p := newPublisher(t, srv.URL, resilience.BreakerConfig{})

	status.Store(http.StatusServiceUnavailable)
	err := p.Publish(t.Context(), syncevent.Event{Kind: syncevent.KindLineupSaved})
	if !errors.Is(err, errTransient) {
		t.Fatalf("expected transient error for 503, got %v", err)
	}

	status.Store(http.StatusBadRequest)
	err = p.Publish(t.Context(), syncevent.Event{Kind: syncevent.KindLineupSaved})
	if err == nil || errors.Is(err, errTransient) {
		t.Fatalf("expected permanent error for 400, got %v", err)
	}
}

func TestWebhookPublisher_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newPublisher(t, srv.URL, resilience.BreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	})

	evt := syncevent.Event{Kind: syncevent.KindConfigSaved}
	for i := 0; i < 2; i++ {
		if err := p.Publish(t.Context(), evt); !errors.Is(err, errTransient) {
			t.Fatalf("attempt %d: expected transient error, got %v", i, err)
		}
	}

	err := p.Publish(t.Context(), evt)
	if !errors.Is(err, resilience.ErrBreakerOpen) {
		t.Fatalf("expected breaker rejection after threshold, got %v", err)
	}
}

func TestNewWebhookPublisher_RejectsBadURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://feed.example.com", "http://"} {
		if _, err := NewWebhookPublisher(Config{URL: raw}, logging.NewNop()); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
