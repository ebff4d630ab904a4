package gameconfig

import "context"

// Repository loads and whole-document-replaces a game's configuration.
type Repository interface {
	Get(ctx context.Context, gameID string) (Configuration, bool, error)
	Replace(ctx context.Context, gameID string, cfg Configuration) error
}
