package httpapi

import (
	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/usecase"
)

type playerDTO struct {
	ID                string `json:"id"`
	TeamID            string `json:"teamId"`
	Name              string `json:"name"`
	Nickname          string `json:"nickname,omitempty"`
	Number            string `json:"number,omitempty"`
	PrimaryPosition   string `json:"primaryPosition,omitempty"`
	SecondaryPosition string `json:"secondaryPosition,omitempty"`
}

type entryDTO struct {
	PlayerID     string `json:"playerId"`
	BattingOrder int    `json:"battingOrder"`
	Position     string `json:"position"`
}

type playerViewDTO struct {
	Player           playerDTO `json:"player"`
	IsInGame         bool      `json:"isInGame"`
	IsInLineup       bool      `json:"isInLineup"`
	Entry            *entryDTO `json:"entry,omitempty"`
	IsPending        bool      `json:"isPending"`
	IsRemovalPending bool      `json:"isRemovalPending"`
}

type teamViewDTO struct {
	Roster []playerViewDTO `json:"roster"`
	Lineup []playerViewDTO `json:"lineup"`
	Bench  []playerViewDTO `json:"bench"`
}

type validityDTO struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

type sessionDTO struct {
	GameID string                   `json:"gameId"`
	Config gameconfig.Configuration `json:"config"`
	Home   teamViewDTO              `json:"home"`
	Away   teamViewDTO              `json:"away"`
}

func entryToDTO(e *lineup.Entry) *entryDTO {
	if e == nil {
		return nil
	}
	return &entryDTO{
		PlayerID:     e.PlayerID,
		BattingOrder: e.BattingOrder,
		Position:     string(e.Position),
	}
}

func playerViewToDTO(v usecase.PlayerView) playerViewDTO {
	return playerViewDTO{
		Player: playerDTO{
			ID:                v.Player.ID,
			TeamID:            v.Player.TeamID,
			Name:              v.Player.Name,
			Nickname:          v.Player.Nickname,
			Number:            v.Player.Number,
			PrimaryPosition:   string(v.Player.PrimaryPosition),
			SecondaryPosition: string(v.Player.SecondaryPosition),
		},
		IsInGame:         v.IsInGame,
		IsInLineup:       v.IsInLineup,
		Entry:            entryToDTO(v.Entry),
		IsPending:        v.IsPending,
		IsRemovalPending: v.IsRemovalPending,
	}
}

func teamViewToDTO(view usecase.TeamView) teamViewDTO {
	out := teamViewDTO{
		Roster: make([]playerViewDTO, 0, len(view.Roster)),
		Lineup: make([]playerViewDTO, 0, len(view.Lineup)),
		Bench:  make([]playerViewDTO, 0, len(view.Bench)),
	}
	for _, v := range view.Roster {
		out.Roster = append(out.Roster, playerViewToDTO(v))
	}
	for _, v := range view.Lineup {
		out.Lineup = append(out.Lineup, playerViewToDTO(v))
	}
	for _, v := range view.Bench {
		out.Bench = append(out.Bench, playerViewToDTO(v))
	}
	return out
}

func validityToDTO(v usecase.Validity) validityDTO {
	missing := make([]string, 0, len(v.Missing))
	for _, pos := range v.Missing {
		missing = append(missing, string(pos))
	}
	return validityDTO{Valid: v.Valid, Missing: missing}
}

func sessionToDTO(sess *usecase.Session) (sessionDTO, error) {
	home, err := sess.TeamView(usecase.RoleHome)
	if err != nil {
		return sessionDTO{}, err
	}
	away, err := sess.TeamView(usecase.RoleAway)
	if err != nil {
		return sessionDTO{}, err
	}
	return sessionDTO{
		GameID: sess.GameID(),
		Config: sess.Config(),
		Home:   teamViewToDTO(home),
		Away:   teamViewToDTO(away),
	}, nil
}
