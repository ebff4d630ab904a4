package memory

import (
	"context"
	"sync"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
)

// LineupRepository keeps one lineup document per game and team.
type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]lineup.Lineup)}
}

func (r *LineupRepository) Get(_ context.Context, gameID, teamID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[lineupKey(gameID, teamID)]
	if !ok {
		return lineup.Lineup{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *LineupRepository) Upsert(_ context.Context, gameID, teamID string, l lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[lineupKey(gameID, teamID)] = l.Clone()
	return nil
}

func lineupKey(gameID, teamID string) string {
	return gameID + "::" + teamID
}
