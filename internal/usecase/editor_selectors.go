package usecase

import (
	"fmt"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
)

// PlayerView is the per-player derived state the editor renders.
// Discriminated by IsInGame, then IsInLineup. IsPending mirrors an
// outstanding membership insert, IsRemovalPending an outstanding
// delete.
type PlayerView struct {
	Player           roster.Player
	IsInGame         bool
	IsInLineup       bool
	Entry            *lineup.Entry
	IsPending        bool
	IsRemovalPending bool
}

// TeamView is the visible contents of the three drop zones. While a
// drag hovers over a container other than its origin, the dragged
// player appears in the hovered zone and disappears from the origin;
// this is a rendering preview that never touches the underlying state.
type TeamView struct {
	Roster []PlayerView
	Lineup []PlayerView
	Bench  []PlayerView
}

// Validity reports whether every required fielding position is covered,
// and which ones are missing, in canonical order, for user messaging.
type Validity struct {
	Valid   bool
	Missing []position.Position
}

// TeamView derives the drop-zone contents for one team. Memoized per
// team on the team revision, the configuration revision, and the drag
// state, so editing one team never recomputes the other's view.
func (s *Session) TeamView(role TeamRole) (TeamView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return TeamView{}, err
	}

	drag := s.drag
	if drag.Role != role {
		drag = DragState{}
	}
	fp := fmt.Sprintf("%d|%d|%s|%s|%s", st.rev, s.configRev, drag.ActivePlayerID, drag.Origin, drag.Over)

	view := s.cache.Get("view:"+string(role), fp, func() any {
		return buildTeamView(st, drag)
	})
	return view.(TeamView), nil
}

// LineupValidity derives the missing-position report for one team.
func (s *Session) LineupValidity(role TeamRole) (Validity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.team(role)
	if err != nil {
		return Validity{}, err
	}

	cfg := s.config.Fielding(string(role))
	fp := fmt.Sprintf("%d|%d", st.rev, s.configRev)

	validity := s.cache.Get("validity:"+string(role), fp, func() any {
		return buildValidity(st, cfg)
	})
	return validity.(Validity), nil
}

func buildValidity(st *TeamState, cfg position.Configuration) Validity {
	occupied := st.Lineup.Current.OccupiedPositions()
	var missing []position.Position
	for _, p := range position.Required(cfg) {
		if !occupied[p] {
			missing = append(missing, p)
		}
	}
	return Validity{Valid: len(missing) == 0, Missing: missing}
}

func buildTeamView(st *TeamState, drag DragState) TeamView {
	previewing := drag.active() && drag.Over != "" && drag.Over != drag.Origin

	hiddenFrom := Container("")
	shownIn := Container("")
	if previewing {
		hiddenFrom = drag.Origin
		shownIn = drag.Over
	}

	var view TeamView

	rosterIDs := st.unassignedIDs()
	st.sortByDisplayName(rosterIDs)
	for _, id := range rosterIDs {
		if hiddenFrom == ContainerRoster && id == drag.ActivePlayerID {
			continue
		}
		view.Roster = append(view.Roster, PlayerView{
			Player:           st.Roster[id],
			IsRemovalPending: pendingDelete(st, id),
		})
	}

	for _, entry := range st.Lineup.Current.Entries {
		if hiddenFrom == ContainerLineup && entry.PlayerID == drag.ActivePlayerID {
			continue
		}
		e := entry
		view.Lineup = append(view.Lineup, PlayerView{
			Player:     st.Roster[entry.PlayerID],
			IsInGame:   true,
			IsInLineup: true,
			Entry:      &e,
			IsPending:  pendingAdd(st, entry.PlayerID),
		})
	}

	benchIDs := st.benchIDs()
	st.sortByDisplayName(benchIDs)
	for _, id := range benchIDs {
		if hiddenFrom == ContainerBench && id == drag.ActivePlayerID {
			continue
		}
		view.Bench = append(view.Bench, PlayerView{
			Player:    st.Roster[id],
			IsInGame:  true,
			IsPending: pendingAdd(st, id),
		})
	}

	if previewing {
		preview := PlayerView{Player: st.Roster[drag.ActivePlayerID]}
		switch shownIn {
		case ContainerRoster:
			view.Roster = append(view.Roster, preview)
		case ContainerLineup:
			preview.IsInGame = true
			preview.IsInLineup = true
			view.Lineup = append(view.Lineup, preview)
		case ContainerBench:
			preview.IsInGame = true
			view.Bench = append(view.Bench, preview)
		}
	}

	return view
}

func pendingAdd(st *TeamState, playerID string) bool {
	_, ok := st.PendingAdds[playerID]
	return ok
}

func pendingDelete(st *TeamState, playerID string) bool {
	_, ok := st.PendingDeletes[playerID]
	return ok
}
