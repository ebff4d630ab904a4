package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/dugout/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo rosters into an empty database so a
// fresh install has teams to open the editor with.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, team_public_id, name, nickname, number, primary_position, secondary_position, joined_at)
VALUES (:public_id, :team_public_id, :name, :nickname, :number, :primary_position, :secondary_position, :joined_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":          p.ID,
			"team_public_id":     p.TeamID,
			"name":               p.Name,
			"nickname":           p.Nickname,
			"number":             p.Number,
			"primary_position":   string(p.PrimaryPosition),
			"secondary_position": string(p.SecondaryPosition),
			"joined_at":          p.JoinedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
