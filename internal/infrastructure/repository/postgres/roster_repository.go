package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/dugout/internal/domain/roster"
	qb "github.com/dugoutlabs/dugout/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

var _ roster.Repository = (*RosterRepository)(nil)

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID string) ([]roster.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]roster.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *RosterRepository) ListGamePlayers(ctx context.Context, gameID, teamID string) ([]string, error) {
	query, args, err := qb.Select("player_public_id").From("game_players").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game players query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list game players: %w", err)
	}
	return ids, nil
}

func (r *RosterRepository) InsertMembership(ctx context.Context, gameID, teamID, playerID string) error {
	query, args, err := qb.InsertInto("game_players").
		Columns("game_public_id", "team_public_id", "player_public_id").
		Values(gameID, teamID, playerID).
		Suffix("ON CONFLICT (game_public_id, team_public_id, player_public_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert membership query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game membership: %w", err)
	}
	return nil
}

func (r *RosterRepository) DeleteMembership(ctx context.Context, gameID, teamID, playerID string) error {
	query, args, err := qb.DeleteFrom("game_players").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("team_public_id", teamID),
			qb.Eq("player_public_id", playerID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete membership query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game membership: %w", err)
	}
	return nil
}
