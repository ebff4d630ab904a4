package roster

import "context"

// Repository exposes roster reads plus the two game-membership writes
// the editor persists optimistically.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListGamePlayers(ctx context.Context, gameID, teamID string) ([]string, error)
	InsertMembership(ctx context.Context, gameID, teamID, playerID string) error
	DeleteMembership(ctx context.Context, gameID, teamID, playerID string) error
}
