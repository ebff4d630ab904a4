package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/infrastructure/repository/memory"
	gameconfigmock "github.com/dugoutlabs/dugout/internal/mocks/domain/gameconfig"
	lineupmock "github.com/dugoutlabs/dugout/internal/mocks/domain/lineup"
	rostermock "github.com/dugoutlabs/dugout/internal/mocks/domain/roster"
	synceventmock "github.com/dugoutlabs/dugout/internal/mocks/domain/syncevent"
)

func TestEditorService_HydrateUsingMockery(t *testing.T) {
	t.Parallel()

	rosterRepo := rostermock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)
	configRepo := gameconfigmock.NewRepository(t)

	homePlayers := []roster.Player{
		{ID: "p-1", TeamID: "team-home", Name: "Dottie Hinson", PrimaryPosition: position.Catcher},
		{ID: "p-2", TeamID: "team-home", Name: "Kit Keller", PrimaryPosition: position.Pitcher},
	}
	persisted := lineup.Lineup{Entries: []lineup.Entry{
		{PlayerID: "p-1", BattingOrder: 1, Position: position.Catcher},
	}}

	rosterRepo.On("ListByTeam", mock.Anything, "team-home").Return(homePlayers, nil).Once()
	rosterRepo.On("ListByTeam", mock.Anything, "team-away").Return([]roster.Player(nil), nil).Once()
	rosterRepo.On("ListGamePlayers", mock.Anything, "game-1", "team-home").Return([]string{"p-1"}, nil).Once()
	rosterRepo.On("ListGamePlayers", mock.Anything, "game-1", "team-away").Return([]string(nil), nil).Once()
	lineupRepo.On("Get", mock.Anything, "game-1", "team-home").Return(persisted, true, nil).Once()
	lineupRepo.On("Get", mock.Anything, "game-1", "team-away").Return(lineup.Lineup{}, false, nil).Once()
	configRepo.On("Get", mock.Anything, "game-1").Return(gameconfig.Configuration{}, false, nil).Once()

	svc, err := NewEditorService(EditorDeps{
		Roster:  rosterRepo,
		Lineup:  lineupRepo,
		Config:  configRepo,
		Workers: 2,
	})
	if err != nil {
		t.Fatalf("new editor service: %v", err)
	}
	t.Cleanup(svc.Close)

	sess, err := svc.Session(t.Context(), "game-1",
		TeamRef{ID: "team-home", Name: "Home"},
		TeamRef{ID: "team-away", Name: "Away"},
	)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}

	if got := sess.Config(); got != gameconfig.Default() {
		t.Fatalf("missing configuration must fall back to the default, got %+v", got)
	}
	snap := captureTeam(sess, RoleHome)
	if len(snap.entries) != 1 || snap.entries[0].PlayerID != "p-1" {
		t.Fatalf("unexpected hydrated lineup: %+v", snap.entries)
	}
}

func TestSaveLineup_UpsertsAndPublishesUsingMockery(t *testing.T) {
	t.Parallel()

	lineupRepo := lineupmock.NewRepository(t)
	publisher := synceventmock.NewPublisher(t)

	lineupRepo.On("Get", mock.Anything, "game-1", mock.Anything).
		Return(lineup.Lineup{}, false, nil).Twice()
	lineupRepo.On("Upsert", mock.Anything, "game-1", memory.TeamIDComets, mock.MatchedBy(func(l lineup.Lineup) bool {
		return len(l.Entries) == 1 && l.Entries[0].PlayerID == "cmt-01"
	})).Return(nil).Once()

	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt syncevent.Event) bool {
		return evt.Kind == syncevent.KindRosterAdd && evt.GameID == "game-1"
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt syncevent.Event) bool {
		return evt.Kind == syncevent.KindLineupSaved && evt.TeamID == memory.TeamIDComets
	})).Return(nil).Once()

	svc, err := NewEditorService(EditorDeps{
		Roster:        memory.NewRosterRepository(memory.SeedPlayers()),
		Lineup:        lineupRepo,
		Config:        memory.NewGameConfigRepository(),
		Publisher:     publisher,
		AutosaveDelay: 20 * time.Millisecond,
		Workers:       2,
	})
	if err != nil {
		t.Fatalf("new editor service: %v", err)
	}
	t.Cleanup(svc.Close)

	sess, err := svc.Session(t.Context(), "game-1",
		TeamRef{ID: memory.TeamIDComets, Name: "Comets"},
		TeamRef{ID: memory.TeamIDRockford, Name: "Rockford"},
	)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil).Wait(); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := sess.SaveLineup(t.Context(), RoleHome); err != nil {
		t.Fatalf("save lineup: %v", err)
	}
}

func TestRosterEvents_CarryPlayerIDUsingMockery(t *testing.T) {
	t.Parallel()

	publisher := synceventmock.NewPublisher(t)

	// A peer applying these events needs to know which player changed.
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt syncevent.Event) bool {
		return evt.Kind == syncevent.KindRosterAdd && evt.GameID == "game-1" &&
			evt.TeamID == memory.TeamIDComets && evt.PlayerID == "cmt-02"
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt syncevent.Event) bool {
		return evt.Kind == syncevent.KindRosterRemove && evt.GameID == "game-1" &&
			evt.TeamID == memory.TeamIDComets && evt.PlayerID == "cmt-02"
	})).Return(nil).Once()

	svc, err := NewEditorService(EditorDeps{
		Roster:    memory.NewRosterRepository(memory.SeedPlayers()),
		Lineup:    memory.NewLineupRepository(),
		Config:    memory.NewGameConfigRepository(),
		Publisher: publisher,
		Workers:   2,
	})
	if err != nil {
		t.Fatalf("new editor service: %v", err)
	}
	t.Cleanup(svc.Close)

	sess, err := svc.Session(t.Context(), "game-1",
		TeamRef{ID: memory.TeamIDComets, Name: "Comets"},
		TeamRef{ID: memory.TeamIDRockford, Name: "Rockford"},
	)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-02", true, nil).Wait(); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := sess.RemovePlayerFromGame(t.Context(), RoleHome, "cmt-02").Wait(); err != nil {
		t.Fatalf("remove player: %v", err)
	}
}
