package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dugoutlabs/dugout/internal/domain/roster"
)

// RosterRepository keeps rosters and game memberships in process.
// Backs tests and the seeded dev mode.
type RosterRepository struct {
	mu          sync.RWMutex
	players     map[string]roster.Player
	memberships map[string]map[string]struct{} // gameID::teamID -> playerIDs
}

func NewRosterRepository(players []roster.Player) *RosterRepository {
	r := &RosterRepository{
		players:     make(map[string]roster.Player, len(players)),
		memberships: make(map[string]map[string]struct{}),
	}
	for _, p := range players {
		r.players[p.ID] = p
	}
	return r
}

func (r *RosterRepository) ListByTeam(_ context.Context, teamID string) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Player, 0)
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *RosterRepository) ListGamePlayers(_ context.Context, gameID, teamID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for id := range r.memberships[membershipKey(gameID, teamID)] {
		out = append(out, id)
	}
	return out, nil
}

func (r *RosterRepository) InsertMembership(_ context.Context, gameID, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("player %s does not exist", playerID)
	}
	key := membershipKey(gameID, teamID)
	if r.memberships[key] == nil {
		r.memberships[key] = make(map[string]struct{})
	}
	r.memberships[key][playerID] = struct{}{}
	return nil
}

func (r *RosterRepository) DeleteMembership(_ context.Context, gameID, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memberships[membershipKey(gameID, teamID)], playerID)
	return nil
}

func membershipKey(gameID, teamID string) string {
	return gameID + "::" + teamID
}
