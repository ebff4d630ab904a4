package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/platform/id"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
	"github.com/dugoutlabs/dugout/internal/platform/memo"
)

// Session is the editing state for one game: both team slices, the
// game configuration, the active drag, and the autosave coordinator.
// A single mutex serializes every transition; each runs to completion
// before the next one starts, and the only suspension points are the
// remote persistence calls issued after the optimistic phase.
type Session struct {
	mu sync.Mutex

	gameID string
	teams  map[TeamRole]*TeamState

	config      gameconfig.Configuration
	configDirty bool
	configRev   uint64

	drag DragState

	cache    *memo.Cache
	autosave *Autosaver

	rosterRepo roster.Repository
	lineupRepo lineup.Repository
	publisher  syncevent.Publisher
	logger     *logging.Logger
	ids        id.Generator
	submit     func(func())
	now        func() time.Time

	closed bool
}

func (s *Session) GameID() string { return s.gameID }

func (s *Session) team(role TeamRole) (*TeamState, error) {
	st, ok := s.teams[role]
	if !ok {
		return nil, fmt.Errorf("%w: unknown team role %q", ErrInvalidInput, role)
	}
	return st, nil
}

// checkTeams verifies that a reopen request names the same team pairing
// the session was hydrated with. The pairing is fixed at hydration, so
// no lock is needed.
func (s *Session) checkTeams(home, away TeamRef) error {
	if s.teams[RoleHome].ID != home.ID || s.teams[RoleAway].ID != away.ID {
		return fmt.Errorf("%w: game %s is already open with teams %s and %s",
			ErrInvalidInput, s.gameID, s.teams[RoleHome].ID, s.teams[RoleAway].ID)
	}
	return nil
}

// Config returns the current configuration document.
func (s *Session) Config() gameconfig.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// UpdateConfig applies a local edit to the configuration document and
// schedules the debounced autosave. Changing the fielding configuration
// never reassigns placed players; it can only make the lineup invalid
// until positions are fixed by hand.
func (s *Session) UpdateConfig(edit func(*gameconfig.Configuration)) error {
	if edit == nil {
		return fmt.Errorf("%w: edit function is required", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	next := s.config
	edit(&next)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.config = next
	s.configDirty = true
	s.configRev++
	s.mu.Unlock()

	s.autosave.Schedule()
	return nil
}

// ConfigDirty reports whether local configuration edits are still
// unpersisted.
func (s *Session) ConfigDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configDirty
}

// OnAutosaveError registers the user-facing surface for configuration
// persistence failures.
func (s *Session) OnAutosaveError(fn func(error)) {
	s.autosave.OnError(fn)
}

// RetrySaveConfig forces an immediate configuration save, bypassing the
// debounce delay. Exposed for the user-triggered retry after autosave
// gives up.
func (s *Session) RetrySaveConfig() {
	s.autosave.Flush()
}

// SaveLineup persists the current lineup for a team. Refused while
// roster-membership writes are pending (the lineup could reference an
// unconfirmed member) or while a previous save is still in flight.
func (s *Session) SaveLineup(ctx context.Context, role TeamRole) error {
	ctx, span := startEditorSpan(ctx, "usecase.Session.SaveLineup")
	defer span.End()

	s.mu.Lock()
	st, err := s.team(role)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if st.Lineup.PreventSaving {
		s.mu.Unlock()
		return ErrSaveBlocked
	}
	if st.Lineup.IsSaving {
		s.mu.Unlock()
		return ErrSaveInProgress
	}
	if !st.Lineup.IsDirty {
		s.mu.Unlock()
		return nil
	}
	st.Lineup.IsSaving = true
	st.bump()
	snapshot := st.Lineup.Current.Clone()
	teamID := st.ID
	s.mu.Unlock()

	saveErr := s.lineupRepo.Upsert(ctx, s.gameID, teamID, snapshot)

	s.mu.Lock()
	st.Lineup.IsSaving = false
	if saveErr == nil {
		saved := snapshot
		st.Lineup.Saved = &saved
		// Edits made while the save was in flight keep the slice dirty.
		st.Lineup.recomputeDirty()
	}
	st.bump()
	s.mu.Unlock()

	if saveErr != nil {
		return fmt.Errorf("save lineup: %w", saveErr)
	}

	s.publish(syncevent.Event{
		Kind:     syncevent.KindLineupSaved,
		GameID:   s.gameID,
		TeamID:   teamID,
		TeamRole: string(role),
	})
	return nil
}

// ApplyRemoteRosterAdd folds in a roster addition announced by another
// client. The action phase runs without the optimistic machinery: only
// game membership changes, nothing is persisted from this side, and
// lineup placement arrives through ApplyRemoteLineup, its own sync
// channel.
func (s *Session) ApplyRemoteRosterAdd(role TeamRole, playerID string) error {
	return s.dispatch(context.Background(), role, s.addPlayerAction(role, playerID, true, nil), false).Wait()
}

// ApplyRemoteLineup replaces a team's lineup with one announced by
// another client. The replacement counts as persisted.
func (s *Session) ApplyRemoteLineup(role TeamRole, l lineup.Lineup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return err
	}
	l.FixBattingOrder()
	st.Lineup.Current = l.Clone()
	saved := l.Clone()
	st.Lineup.Saved = &saved
	st.Lineup.IsDirty = false
	for _, entry := range l.Entries {
		st.GamePlayers[entry.PlayerID] = struct{}{}
	}
	st.bump()
	return nil
}

// Close stops the autosave coordinator. In-flight remote calls are not
// cancelled; their settle transitions still run against this container
// and are harmless once nothing reads it.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.autosave.Close()
}

func (s *Session) publish(evt syncevent.Event) {
	if s.publisher == nil {
		return
	}
	evt.OccurredAt = s.now()
	if s.ids != nil {
		if eventID, err := s.ids.NewID(); err == nil {
			evt.EventID = eventID
		}
	}
	if err := s.publisher.Publish(context.Background(), evt); err != nil {
		s.logger.Warn("publish sync event failed", "kind", evt.Kind, "game_id", evt.GameID, "error", err)
	}
}
