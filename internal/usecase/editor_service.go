package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/platform/id"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
	"github.com/dugoutlabs/dugout/internal/platform/memo"
	"github.com/dugoutlabs/dugout/internal/platform/resilience"
)

const defaultWorkerPoolSize = 32

// TeamRef identifies one side of a game when opening an editor.
type TeamRef struct {
	ID   string
	Name string
}

// EditorDeps bundles the collaborators an EditorService needs.
type EditorDeps struct {
	Roster    roster.Repository
	Lineup    lineup.Repository
	Config    gameconfig.Repository
	Publisher syncevent.Publisher
	Logger    *logging.Logger
	// IDs stamps outbound sync events so subscribers can dedupe
	// redeliveries. Defaults to the random generator.
	IDs id.Generator

	// AutosaveDelay overrides the 1s debounce, mostly for tests.
	AutosaveDelay time.Duration
	// Workers caps the shared persistence worker pool.
	Workers int
}

// EditorService hands out one Session per game, hydrating it from the
// backing store on first use. Remote persistence calls from every
// session share one worker pool.
type EditorService struct {
	rosterRepo roster.Repository
	lineupRepo lineup.Repository
	configRepo gameconfig.Repository
	publisher  syncevent.Publisher
	logger     *logging.Logger
	ids        id.Generator

	autosaveDelay time.Duration
	workers       *ants.Pool

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	flight resilience.Group[*Session]
	now    func() time.Time
}

func NewEditorService(deps EditorDeps) (*EditorService, error) {
	if deps.Roster == nil || deps.Lineup == nil || deps.Config == nil {
		return nil, fmt.Errorf("roster, lineup and config repositories are required")
	}
	if deps.Publisher == nil {
		deps.Publisher = syncevent.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.IDs == nil {
		deps.IDs = id.NewRandomGenerator()
	}
	if deps.Workers <= 0 {
		deps.Workers = defaultWorkerPoolSize
	}

	workers, err := ants.NewPool(deps.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &EditorService{
		rosterRepo:    deps.Roster,
		lineupRepo:    deps.Lineup,
		configRepo:    deps.Config,
		publisher:     deps.Publisher,
		logger:        deps.Logger,
		ids:           deps.IDs,
		autosaveDelay: deps.AutosaveDelay,
		workers:       workers,
		sessions:      make(map[string]*Session),
		now:           time.Now,
	}, nil
}

// Session returns the editor session for a game, hydrating it on first
// use. Concurrent calls for the same game share one hydration.
func (e *EditorService) Session(ctx context.Context, gameID string, home, away TeamRef) (*Session, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	if home.ID == "" || away.ID == "" {
		return nil, fmt.Errorf("%w: home and away team ids are required", ErrInvalidInput)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}
	if existing, ok := e.sessions[gameID]; ok {
		e.mu.Unlock()
		if err := existing.checkTeams(home, away); err != nil {
			return nil, err
		}
		return existing, nil
	}
	e.mu.Unlock()

	session, err, _ := e.flight.Do(gameID, func() (*Session, error) {
		e.mu.Lock()
		if existing, ok := e.sessions[gameID]; ok {
			e.mu.Unlock()
			return existing, nil
		}
		e.mu.Unlock()

		created, err := e.hydrate(ctx, gameID, home, away)
		if err != nil {
			return nil, err
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed {
			created.Close()
			return nil, ErrClosed
		}
		e.sessions[gameID] = created
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	// A shared hydration can hand back a session opened by another
	// caller; its team pairing must still match this request.
	if err := session.checkTeams(home, away); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns an already-hydrated session.
func (e *EditorService) Get(gameID string) (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[gameID]
	return s, ok
}

// EndSession discards a game's editor state. The backing store keeps
// everything persisted; in-flight remote calls are not cancelled.
func (e *EditorService) EndSession(gameID string) {
	e.mu.Lock()
	s, ok := e.sessions[gameID]
	delete(e.sessions, gameID)
	e.mu.Unlock()

	if ok {
		s.Close()
	}
}

func (e *EditorService) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	sessions := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		sessions = append(sessions, s)
	}
	e.sessions = map[string]*Session{}
	e.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	e.workers.Release()
}

// hydrate loads both rosters, both lineups, game membership, and the
// configuration document concurrently and assembles the session.
func (e *EditorService) hydrate(ctx context.Context, gameID string, home, away TeamRef) (*Session, error) {
	ctx, span := startEditorSpan(ctx, "usecase.EditorService.hydrate")
	defer span.End()

	var (
		homeRoster, awayRoster []roster.Player
		homeGame, awayGame     []string
		homeLineup, awayLineup lineup.Lineup
		homeHasLU, awayHasLU   bool
		configDoc              gameconfig.Configuration
		hasConfig              bool
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		homeRoster, err = e.rosterRepo.ListByTeam(ctx, home.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		awayRoster, err = e.rosterRepo.ListByTeam(ctx, away.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		homeGame, err = e.rosterRepo.ListGamePlayers(ctx, gameID, home.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		awayGame, err = e.rosterRepo.ListGamePlayers(ctx, gameID, away.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		homeLineup, homeHasLU, err = e.lineupRepo.Get(ctx, gameID, home.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		awayLineup, awayHasLU, err = e.lineupRepo.Get(ctx, gameID, away.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		configDoc, hasConfig, err = e.configRepo.Get(ctx, gameID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("hydrate editor for game %s: %w", gameID, err)
	}

	if !hasConfig {
		configDoc = gameconfig.Default()
	}

	s := &Session{
		gameID:     gameID,
		teams:      make(map[TeamRole]*TeamState, 2),
		config:     configDoc,
		cache:      memo.NewCache(),
		rosterRepo: e.rosterRepo,
		lineupRepo: e.lineupRepo,
		publisher:  e.publisher,
		logger:     e.logger,
		ids:        e.ids,
		submit:     e.submitTask,
		now:        e.now,
	}

	s.teams[RoleHome] = buildTeamState(home, RoleHome, homeRoster, homeGame, homeLineup, homeHasLU, configDoc.HomeFielding)
	s.teams[RoleAway] = buildTeamState(away, RoleAway, awayRoster, awayGame, awayLineup, awayHasLU, configDoc.AwayFielding)

	s.autosave = newAutosaver(gameID, e.configRepo, e.autosaveDelay,
		func() (gameconfig.Configuration, bool) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.config, s.configDirty
		},
		func(saved gameconfig.Configuration) {
			s.mu.Lock()
			// Later edits stay dirty.
			if s.config == saved {
				s.configDirty = false
			}
			s.mu.Unlock()
			s.publish(syncevent.Event{Kind: syncevent.KindConfigSaved, GameID: gameID})
		},
		e.logger,
	)

	e.logger.InfoContext(ctx, "editor session hydrated",
		"game_id", gameID,
		"home_roster", len(homeRoster),
		"away_roster", len(awayRoster),
		"home_lineup", len(s.teams[RoleHome].Lineup.Current.Entries),
		"away_lineup", len(s.teams[RoleAway].Lineup.Current.Entries),
	)
	return s, nil
}

func (e *EditorService) submitTask(task func()) {
	if err := e.workers.Submit(task); err != nil {
		// Pool released during shutdown; run inline rather than drop
		// the settle transition.
		go task()
	}
}

func buildTeamState(
	ref TeamRef,
	role TeamRole,
	players []roster.Player,
	gameIDs []string,
	persisted lineup.Lineup,
	hasPersisted bool,
	fielding position.Configuration,
) *TeamState {
	st := newTeamState(ref.ID, ref.Name, role)
	for _, p := range players {
		st.Roster[p.ID] = p
	}
	for _, id := range gameIDs {
		st.GamePlayers[id] = struct{}{}
	}

	if hasPersisted {
		persisted.FixBattingOrder()
		st.Lineup.Current = persisted.Clone()
		saved := persisted.Clone()
		st.Lineup.Saved = &saved
		st.Lineup.IsDirty = false
		// Game membership is a superset of lineup membership.
		for _, entry := range persisted.Entries {
			st.GamePlayers[entry.PlayerID] = struct{}{}
		}
		return st
	}

	// No persisted lineup: build the default one by placing every game
	// player through the usual preference chain, in display-name order.
	ids := make([]string, 0, len(st.GamePlayers))
	for id := range st.GamePlayers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	st.sortByDisplayName(ids)
	for _, id := range ids {
		p := st.Roster[id]
		pos := position.DefaultFor(
			p.PrimaryPosition,
			p.SecondaryPosition,
			fielding,
			st.Lineup.Current.OccupiedPositions(),
			"",
		)
		st.Lineup.Current.Insert(id, pos, nil)
	}
	st.Lineup.recomputeDirty()
	return st
}
