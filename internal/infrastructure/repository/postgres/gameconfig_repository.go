package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	qb "github.com/dugoutlabs/dugout/internal/platform/querybuilder"
)

// GameConfigRepository stores the configuration document whole, one
// jsonb row per game. Autosave replaces the entire document on every
// write, so there is no per-field schema to maintain.
type GameConfigRepository struct {
	db *sqlx.DB
}

func NewGameConfigRepository(db *sqlx.DB) *GameConfigRepository {
	return &GameConfigRepository{db: db}
}

var _ gameconfig.Repository = (*GameConfigRepository)(nil)

func (r *GameConfigRepository) Get(ctx context.Context, gameID string) (gameconfig.Configuration, bool, error) {
	query, args, err := qb.Select("*").From("game_configurations").
		Where(qb.Eq("game_public_id", gameID)).
		ToSQL()
	if err != nil {
		return gameconfig.Configuration{}, false, fmt.Errorf("build get configuration query: %w", err)
	}

	var row gameConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameconfig.Configuration{}, false, nil
		}
		return gameconfig.Configuration{}, false, fmt.Errorf("get configuration: %w", err)
	}

	var cfg gameconfig.Configuration
	if err := sonic.Unmarshal(row.Document, &cfg); err != nil {
		return gameconfig.Configuration{}, false, fmt.Errorf("decode configuration document: %w", err)
	}
	return cfg, true, nil
}

func (r *GameConfigRepository) Replace(ctx context.Context, gameID string, cfg gameconfig.Configuration) error {
	body, err := sonic.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode configuration document: %w", err)
	}

	query, args, err := qb.InsertInto("game_configurations").
		Columns("game_public_id", "document").
		Values(gameID, body).
		Suffix("ON CONFLICT (game_public_id) DO UPDATE SET document = ?, updated_at = now()", body).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build replace configuration query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace configuration: %w", err)
	}
	return nil
}
