package memory

import (
	"context"
	"sync"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
)

// GameConfigRepository keeps configuration documents in process.
type GameConfigRepository struct {
	mu    sync.RWMutex
	items map[string]gameconfig.Configuration
}

func NewGameConfigRepository() *GameConfigRepository {
	return &GameConfigRepository{items: make(map[string]gameconfig.Configuration)}
}

func (r *GameConfigRepository) Get(_ context.Context, gameID string) (gameconfig.Configuration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[gameID]
	if !ok {
		return gameconfig.Configuration{}, false, nil
	}
	return item, true, nil
}

func (r *GameConfigRepository) Replace(_ context.Context, gameID string, cfg gameconfig.Configuration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[gameID] = cfg
	return nil
}
