package lineup

import "context"

// Repository persists one lineup document per game and team.
type Repository interface {
	Get(ctx context.Context, gameID, teamID string) (Lineup, bool, error)
	Upsert(ctx context.Context, gameID, teamID string, l Lineup) error
}
