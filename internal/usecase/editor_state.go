package usecase

import (
	"sort"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
)

// TeamRole distinguishes the two state slices of a game.
type TeamRole string

const (
	RoleHome TeamRole = "home"
	RoleAway TeamRole = "away"
)

func (r TeamRole) Valid() bool {
	return r == RoleHome || r == RoleAway
}

// LineupState is the lineup half of a team slice: the working copy, the
// last persisted copy, and the save bookkeeping.
type LineupState struct {
	Current       lineup.Lineup
	Saved         *lineup.Lineup
	IsDirty       bool
	IsSaving      bool
	PreventSaving bool
}

func (ls *LineupState) recomputeDirty() {
	if ls.Saved == nil {
		ls.IsDirty = len(ls.Current.Entries) > 0
		return
	}
	ls.IsDirty = !ls.Current.Equal(*ls.Saved)
}

// TeamState holds everything the editor tracks for one team: full
// roster, which players are activated for this game, the lineup, and
// the pending-operation bookkeeping for optimistic roster writes.
type TeamState struct {
	ID   string
	Name string
	Role TeamRole

	Roster      map[string]roster.Player
	GamePlayers map[string]struct{}

	// PendingAdds holds player IDs whose membership insert is in
	// flight. PendingDeletes maps player IDs whose membership delete is
	// in flight to the lineup entry removed by the optimistic
	// transition, nil when the player was benched.
	PendingAdds    map[string]struct{}
	PendingDeletes map[string]*lineup.Entry

	Lineup LineupState

	// rev bumps on every state change; selector memoization keys on it.
	rev uint64
}

func newTeamState(id, name string, role TeamRole) *TeamState {
	return &TeamState{
		ID:             id,
		Name:           name,
		Role:           role,
		Roster:         make(map[string]roster.Player),
		GamePlayers:    make(map[string]struct{}),
		PendingAdds:    make(map[string]struct{}),
		PendingDeletes: make(map[string]*lineup.Entry),
	}
}

func (st *TeamState) bump() {
	st.rev++
}

func (st *TeamState) inGame(playerID string) bool {
	_, ok := st.GamePlayers[playerID]
	return ok
}

// updatePreventSaving keeps the gate in lockstep with the pending sets:
// the lineup must not be persisted while it may reference a roster
// membership that is still unconfirmed or about to be reverted.
func (st *TeamState) updatePreventSaving() {
	st.Lineup.PreventSaving = len(st.PendingAdds) > 0 || len(st.PendingDeletes) > 0
}

// benchIDs returns game players outside the lineup.
func (st *TeamState) benchIDs() []string {
	out := make([]string, 0, len(st.GamePlayers))
	for id := range st.GamePlayers {
		if !st.Lineup.Current.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// unassignedIDs returns roster players not activated for this game.
func (st *TeamState) unassignedIDs() []string {
	out := make([]string, 0, len(st.Roster))
	for id := range st.Roster {
		if !st.inGame(id) {
			out = append(out, id)
		}
	}
	return out
}

// sortByDisplayName orders IDs alphabetically by the players' display
// names, falling back to the ID for players missing from the roster.
func (st *TeamState) sortByDisplayName(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		an, bn := a, b
		if p, ok := st.Roster[a]; ok {
			an = p.DisplayName()
		}
		if p, ok := st.Roster[b]; ok {
			bn = p.DisplayName()
		}
		if an == bn {
			return a < b
		}
		return an < bn
	})
}
