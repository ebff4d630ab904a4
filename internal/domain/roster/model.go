package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/dugoutlabs/dugout/internal/domain/position"
)

// Player is a team-roster member: static identity plus membership
// metadata. Immutable during an editing session except for whether the
// membership row exists at all.
type Player struct {
	ID                string
	TeamID            string
	Name              string
	Nickname          string
	Number            string
	PrimaryPosition   position.Position
	SecondaryPosition position.Position
	JoinedAt          time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.PrimaryPosition != "" && !position.IsKnown(p.PrimaryPosition) {
		return fmt.Errorf("unknown primary position: %s", p.PrimaryPosition)
	}
	if p.SecondaryPosition != "" && !position.IsKnown(p.SecondaryPosition) {
		return fmt.Errorf("unknown secondary position: %s", p.SecondaryPosition)
	}
	return nil
}

// DisplayName is what roster and bench lists sort by.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}
