package syncevent

import "time"

// Kind names a change another scorekeeping client should learn about.
type Kind string

const (
	KindRosterAdd    Kind = "roster_add"
	KindRosterRemove Kind = "roster_remove"
	KindLineupSaved  Kind = "lineup_saved"
	KindConfigSaved  Kind = "config_saved"
)

// Event is the outbound notification for a confirmed change. The
// inbound half arrives through the editor's non-optimistic apply path.
type Event struct {
	EventID    string    `json:"eventId"`
	Kind       Kind      `json:"kind"`
	GameID     string    `json:"gameId"`
	TeamID     string    `json:"teamId,omitempty"`
	TeamRole   string    `json:"teamRole,omitempty"`
	PlayerID   string    `json:"playerId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
