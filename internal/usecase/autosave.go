package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
)

const (
	defaultAutosaveDelay = time.Second
	autosaveMaxAttempts  = 3
)

// Autosaver coalesces rapid configuration edits into one deferred
// whole-document replace. Trailing debounce: every edit reschedules a
// single timer. A save arriving while one is in flight defers instead
// of issuing a second concurrent call. Failures retry on the same fixed
// delay up to three consecutive attempts, then stop until the next
// edit.
type Autosaver struct {
	mu sync.Mutex

	gameID string
	repo   gameconfig.Repository
	logger *logging.Logger
	delay  time.Duration

	// source reads the latest document and whether it is dirty; saved
	// is invoked with the persisted value on success.
	source func() (gameconfig.Configuration, bool)
	saved  func(gameconfig.Configuration)

	onError func(error)

	timer     *time.Timer
	saving    bool
	deferSave bool
	failures  int
	closed    bool
}

func newAutosaver(
	gameID string,
	repo gameconfig.Repository,
	delay time.Duration,
	source func() (gameconfig.Configuration, bool),
	saved func(gameconfig.Configuration),
	logger *logging.Logger,
) *Autosaver {
	if delay <= 0 {
		delay = defaultAutosaveDelay
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Autosaver{
		gameID: gameID,
		repo:   repo,
		logger: logger,
		delay:  delay,
		source: source,
		saved:  saved,
	}
}

// OnError registers the user-visible failure surface.
func (a *Autosaver) OnError(fn func(error)) {
	a.mu.Lock()
	a.onError = fn
	a.mu.Unlock()
}

// Schedule notes a local edit: the retry budget resets and the save
// timer restarts from now.
func (a *Autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.failures = 0
	a.scheduleLocked()
}

func (a *Autosaver) scheduleLocked() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.flush)
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	if a.saving {
		// A call is in flight; run again once it settles.
		a.deferSave = true
		a.mu.Unlock()
		return
	}

	cfg, dirty := a.source()
	if !dirty {
		a.mu.Unlock()
		return
	}
	a.saving = true
	a.mu.Unlock()

	err := a.repo.Replace(context.Background(), a.gameID, cfg)

	a.mu.Lock()
	a.saving = false
	if err != nil {
		a.failures++
		notify := a.onError
		retry := a.failures < autosaveMaxAttempts && !a.closed
		if retry {
			a.scheduleLocked()
		} else if a.deferSave {
			a.deferSave = false
			a.scheduleLocked()
		}
		a.mu.Unlock()

		a.logger.Warn("configuration autosave failed",
			"game_id", a.gameID, "attempt", a.failures, "will_retry", retry, "error", err)
		if notify != nil {
			notify(err)
		}
		return
	}

	a.failures = 0
	saved := a.saved
	if a.deferSave && !a.closed {
		a.deferSave = false
		a.scheduleLocked()
	}
	a.mu.Unlock()

	// saved can block on the sync feed; it runs off the lock, like
	// notify on the failure path.
	if saved != nil {
		saved(cfg)
	}
}

// Flush runs any scheduled save immediately. Used by explicit
// user-triggered retry and on shutdown.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.failures = 0
	a.mu.Unlock()
	a.flush()
}

func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
}
