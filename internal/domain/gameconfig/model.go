package gameconfig

import (
	"fmt"

	"github.com/dugoutlabs/dugout/internal/domain/position"
)

// OpponentLineupMode selects how the other team's batters are recorded.
type OpponentLineupMode string

const (
	OpponentLineupFull    OpponentLineupMode = "full"
	OpponentLineupNumbers OpponentLineupMode = "numbers_only"
	OpponentLineupNone    OpponentLineupMode = "none"
)

type MercyRule struct {
	Enabled     bool `json:"enabled"`
	RunLimit    int  `json:"runLimit"`
	AfterInning int  `json:"afterInning"`
}

type SetupChecklist struct {
	RulesConfirmed   bool `json:"rulesConfirmed"`
	HomeLineupSet    bool `json:"homeLineupSet"`
	AwayLineupSet    bool `json:"awayLineupSet"`
	FieldingReviewed bool `json:"fieldingReviewed"`
}

// Configuration is the whole-document game setup blob. It is edited
// locally and pushed with Replace as a single JSON value; there is no
// per-field patch on the wire.
type Configuration struct {
	Innings            int                    `json:"innings"`
	TimeLimitMinutes   int                    `json:"timeLimitMinutes"`
	HomeRunLimit       int                    `json:"homeRunLimit"`
	Mercy              MercyRule              `json:"mercyRule"`
	FlipFlop           bool                   `json:"flipFlop"`
	AllowTies          bool                   `json:"allowTies"`
	DesignatedHitter   bool                   `json:"designatedHitter"`
	OpponentLineup     OpponentLineupMode     `json:"opponentLineupMode"`
	Checklist          SetupChecklist         `json:"setupChecklist"`
	HomeFielding       position.Configuration `json:"homeFielding"`
	AwayFielding       position.Configuration `json:"awayFielding"`
}

func Default() Configuration {
	return Configuration{
		Innings:          7,
		TimeLimitMinutes: 0,
		HomeRunLimit:     0,
		Mercy:            MercyRule{Enabled: true, RunLimit: 15, AfterInning: 3},
		FlipFlop:         false,
		AllowTies:        true,
		DesignatedHitter: false,
		OpponentLineup:   OpponentLineupNumbers,
		HomeFielding:     position.DefaultConfiguration(),
		AwayFielding:     position.DefaultConfiguration(),
	}
}

func (c Configuration) Validate() error {
	if c.Innings < 1 || c.Innings > 12 {
		return fmt.Errorf("innings must be between 1 and 12, got %d", c.Innings)
	}
	if c.TimeLimitMinutes < 0 {
		return fmt.Errorf("time limit cannot be negative")
	}
	if c.HomeRunLimit < 0 {
		return fmt.Errorf("home run limit cannot be negative")
	}
	switch c.OpponentLineup {
	case OpponentLineupFull, OpponentLineupNumbers, OpponentLineupNone:
	default:
		return fmt.Errorf("unknown opponent lineup mode: %s", c.OpponentLineup)
	}
	if err := c.HomeFielding.Validate(); err != nil {
		return fmt.Errorf("home fielding: %w", err)
	}
	if err := c.AwayFielding.Validate(); err != nil {
		return fmt.Errorf("away fielding: %w", err)
	}
	return nil
}

// Fielding returns the fielding configuration for a team role string
// ("home"/"away").
func (c Configuration) Fielding(role string) position.Configuration {
	if role == "away" {
		return c.AwayFielding
	}
	return c.HomeFielding
}
