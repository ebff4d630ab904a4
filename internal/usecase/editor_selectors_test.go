package usecase

import (
	"testing"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/infrastructure/repository/memory"
)

func viewIDs(views []PlayerView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Player.ID)
	}
	return out
}

func containsID(views []PlayerView, id string) bool {
	for _, v := range views {
		if v.Player.ID == id {
			return true
		}
	}
	return false
}

func TestTeamView_ZonesAndFlags(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil).Wait(); err != nil {
		t.Fatalf("lineup add: %v", err)
	}
	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-02", true, nil).Wait(); err != nil {
		t.Fatalf("bench add: %v", err)
	}

	view, err := sess.TeamView(RoleHome)
	if err != nil {
		t.Fatalf("team view: %v", err)
	}

	if containsID(view.Roster, "cmt-01") || containsID(view.Roster, "cmt-02") {
		t.Fatalf("game players must leave the roster zone: %v", viewIDs(view.Roster))
	}
	if len(view.Lineup) != 1 || view.Lineup[0].Player.ID != "cmt-01" {
		t.Fatalf("unexpected lineup zone: %v", viewIDs(view.Lineup))
	}
	if !view.Lineup[0].IsInGame || !view.Lineup[0].IsInLineup || view.Lineup[0].Entry == nil {
		t.Fatalf("lineup view flags wrong: %+v", view.Lineup[0])
	}
	if len(view.Bench) != 1 || view.Bench[0].Player.ID != "cmt-02" {
		t.Fatalf("unexpected bench zone: %v", viewIDs(view.Bench))
	}
	if !view.Bench[0].IsInGame || view.Bench[0].IsInLineup {
		t.Fatalf("bench view flags wrong: %+v", view.Bench[0])
	}

	// Roster zone is sorted by display name.
	ids := viewIDs(view.Roster)
	for i := 1; i < len(ids); i++ {
		a := sessPlayerName(sess, ids[i-1])
		b := sessPlayerName(sess, ids[i])
		if a > b {
			t.Fatalf("roster zone not sorted: %s before %s", a, b)
		}
	}
}

func sessPlayerName(s *Session, id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teams[RoleHome].Roster[id].DisplayName()
}

func TestTeamView_PendingFlags(t *testing.T) {
	gate := make(chan struct{})
	repo := &gatedRosterRepo{inner: memory.NewRosterRepository(memory.SeedPlayers()), gate: gate}
	_, sess := newEditor(t, repo)

	pendingAdd := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil)

	view, err := sess.TeamView(RoleHome)
	if err != nil {
		t.Fatalf("team view: %v", err)
	}
	if len(view.Lineup) != 1 || !view.Lineup[0].IsPending {
		t.Fatalf("pending addition must be flagged: %+v", view.Lineup)
	}

	close(gate)
	if err := pendingAdd.Wait(); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, _ = sess.TeamView(RoleHome)
	if view.Lineup[0].IsPending {
		t.Fatalf("pending flag must clear after confirmation")
	}
}

func TestTeamView_RemovalPendingFlag(t *testing.T) {
	repo := &gatedRosterRepo{inner: memory.NewRosterRepository(memory.SeedPlayers())}
	_, sess := newEditor(t, repo)

	if err := sess.AddPlayerToGame(t.Context(), RoleHome, "cmt-01", false, nil).Wait(); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	gate := make(chan struct{})
	repo.gate = gate
	pendingRemove := sess.RemovePlayerFromGame(t.Context(), RoleHome, "cmt-01")

	view, err := sess.TeamView(RoleHome)
	if err != nil {
		t.Fatalf("team view: %v", err)
	}
	// During the pending delete the player is back in the roster zone,
	// flagged so the UI can disable them.
	found := false
	for _, v := range view.Roster {
		if v.Player.ID == "cmt-01" {
			found = true
			if !v.IsRemovalPending {
				t.Fatalf("removal-pending flag missing: %+v", v)
			}
		}
	}
	if !found {
		t.Fatalf("removed player must appear in roster zone")
	}

	close(gate)
	if err := pendingRemove.Wait(); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestTeamView_DragPreview(t *testing.T) {
	_, sess := newEditor(t, nil)

	if err := sess.DragStart(RoleHome, "cmt-05", ContainerRoster); err != nil {
		t.Fatalf("drag start: %v", err)
	}
	sess.DragOver(ContainerLineup)

	view, err := sess.TeamView(RoleHome)
	if err != nil {
		t.Fatalf("team view: %v", err)
	}
	if containsID(view.Roster, "cmt-05") {
		t.Fatalf("dragged player must leave the origin zone while hovering elsewhere")
	}
	if !containsID(view.Lineup, "cmt-05") {
		t.Fatalf("dragged player must preview in the hovered zone")
	}

	// Preview is pure rendering: underlying state is untouched.
	snap := captureTeam(sess, RoleHome)
	if snap.game["cmt-05"] || len(snap.entries) != 0 {
		t.Fatalf("drag preview leaked into state: %+v", snap)
	}

	// Hovering back over the origin reverts the preview.
	sess.DragOver(ContainerRoster)
	view, _ = sess.TeamView(RoleHome)
	if !containsID(view.Roster, "cmt-05") || containsID(view.Lineup, "cmt-05") {
		t.Fatalf("preview must revert when hovering the origin")
	}

	// Cancelling (nil destination) leaves everything unchanged.
	if p := sess.DragEnd(t.Context(), ""); !p.NoOp() {
		t.Fatalf("cancelled drag must be a no-op")
	}
	if drag := sess.Drag(); drag.active() {
		t.Fatalf("drag state must reset after DragEnd")
	}
}

func TestLineupValidity_MissingPositions(t *testing.T) {
	_, sess := newEditor(t, nil)

	validity, err := sess.LineupValidity(RoleHome)
	if err != nil {
		t.Fatalf("validity: %v", err)
	}
	if validity.Valid {
		t.Fatalf("empty lineup cannot be valid")
	}
	if len(validity.Missing) != 9 {
		t.Fatalf("expected all 9 required positions missing, got %v", validity.Missing)
	}
	if validity.Missing[0] != position.Pitcher {
		t.Fatalf("missing list must follow canonical order, got %v", validity.Missing)
	}

	// Fill every required position; cmt-01..cmt-09 cover the standard
	// nine through their primary-position defaults.
	for _, id := range []string{"cmt-01", "cmt-02", "cmt-03", "cmt-04", "cmt-05", "cmt-06", "cmt-07", "cmt-08", "cmt-09"} {
		if err := sess.AddPlayerToGame(t.Context(), RoleHome, id, false, nil).Wait(); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	validity, _ = sess.LineupValidity(RoleHome)
	if !validity.Valid {
		t.Fatalf("expected valid lineup, missing %v", validity.Missing)
	}
}

func TestLineupValidity_FieldingChangeInvalidatesWithoutReassigning(t *testing.T) {
	_, sess := newEditor(t, nil)

	for _, id := range []string{"cmt-01", "cmt-02", "cmt-03", "cmt-04", "cmt-05", "cmt-06", "cmt-07", "cmt-08", "cmt-09"} {
		if err := sess.AddPlayerToGame(t.Context(), RoleHome, id, false, nil).Wait(); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	before := captureTeam(sess, RoleHome)

	// Switch home to five infielders and four outfielders.
	err := sess.UpdateConfig(func(cfg *gameconfig.Configuration) {
		cfg.HomeFielding.Infielders = 5
		cfg.HomeFielding.Outfielders = 4
	})
	if err != nil {
		t.Fatalf("update config: %v", err)
	}

	validity, _ := sess.LineupValidity(RoleHome)
	if validity.Valid {
		t.Fatalf("lineup must become invalid under the new configuration")
	}

	// Placed players keep their positions.
	after := captureTeam(sess, RoleHome)
	for i := range before.entries {
		if before.entries[i] != after.entries[i] {
			t.Fatalf("fielding change must not reassign players: %+v -> %+v", before.entries[i], after.entries[i])
		}
	}
}
