package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	qb "github.com/dugoutlabs/dugout/internal/platform/querybuilder"
)

// LineupRepository stores one lineup document per game and team. The
// batting slice is a single jsonb column rather than rows: it is always
// read and replaced whole, and ordering lives inside the entries.
type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

var _ lineup.Repository = (*LineupRepository)(nil)

func (r *LineupRepository) Get(ctx context.Context, gameID, teamID string) (lineup.Lineup, bool, error) {
	query, args, err := qb.Select("*").From("game_lineups").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("team_public_id", teamID),
		).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("get lineup: %w", err)
	}

	var entries []lineup.Entry
	if len(row.Entries) > 0 {
		if err := sonic.Unmarshal(row.Entries, &entries); err != nil {
			return lineup.Lineup{}, false, fmt.Errorf("decode lineup entries: %w", err)
		}
	}
	return lineup.Lineup{Entries: entries}, true, nil
}

func (r *LineupRepository) Upsert(ctx context.Context, gameID, teamID string, l lineup.Lineup) error {
	entries := l.Entries
	if entries == nil {
		entries = []lineup.Entry{}
	}
	body, err := sonic.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode lineup entries: %w", err)
	}

	query, args, err := qb.InsertInto("game_lineups").
		Columns("game_public_id", "team_public_id", "entries").
		Values(gameID, teamID, body).
		Suffix("ON CONFLICT (game_public_id, team_public_id) DO UPDATE SET entries = ?, updated_at = now()", body).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert lineup query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup: %w", err)
	}
	return nil
}
