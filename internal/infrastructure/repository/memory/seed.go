package memory

import (
	"time"

	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
)

const (
	TeamIDComets   = "team-comets"
	TeamIDRockford = "team-rockford"
)

// SeedPlayers returns two full softball rosters for dev mode and tests.
func SeedPlayers() []roster.Player {
	joined := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	comets := []roster.Player{
		{ID: "cmt-01", Name: "Alves, Marina", Number: "7", PrimaryPosition: position.Pitcher, SecondaryPosition: position.FirstBase},
		{ID: "cmt-02", Name: "Brock, Sam", Number: "12", PrimaryPosition: position.Catcher},
		{ID: "cmt-03", Name: "Cheng, Lily", Number: "3", PrimaryPosition: position.Shortstop, SecondaryPosition: position.SecondBase},
		{ID: "cmt-04", Name: "Dawson, Kit", Number: "21", PrimaryPosition: position.FirstBase},
		{ID: "cmt-05", Name: "Eng, Priya", Number: "5", PrimaryPosition: position.SecondBase, SecondaryPosition: position.Shortstop},
		{ID: "cmt-06", Name: "Fuentes, Ana", Number: "9", PrimaryPosition: position.ThirdBase},
		{ID: "cmt-07", Name: "Gray, Toni", Number: "14", PrimaryPosition: position.LeftField},
		{ID: "cmt-08", Name: "Holm, Jess", Number: "2", PrimaryPosition: position.CenterField, SecondaryPosition: position.RightField},
		{ID: "cmt-09", Name: "Ito, Mei", Number: "18", PrimaryPosition: position.RightField},
		{ID: "cmt-10", Name: "Juarez, Bea", Number: "24", PrimaryPosition: position.LeftCenterField},
		{ID: "cmt-11", Name: "Kade, Ro", Number: "31", PrimaryPosition: position.MiddleInfield, SecondaryPosition: position.SecondBase},
		{ID: "cmt-12", Name: "Lund, Casey", Number: "8"},
	}
	rockford := []roster.Player{
		{ID: "rck-01", Name: "Marsh, Dana", Number: "1", PrimaryPosition: position.Pitcher},
		{ID: "rck-02", Name: "Nolan, Riley", Number: "16", PrimaryPosition: position.Catcher, SecondaryPosition: position.FirstBase},
		{ID: "rck-03", Name: "Okafor, Zuri", Number: "4", PrimaryPosition: position.Shortstop},
		{ID: "rck-04", Name: "Park, Joon", Number: "22", PrimaryPosition: position.FirstBase},
		{ID: "rck-05", Name: "Quinn, Harper", Number: "6", PrimaryPosition: position.SecondBase},
		{ID: "rck-06", Name: "Reyes, Sol", Number: "10", PrimaryPosition: position.ThirdBase, SecondaryPosition: position.Shortstop},
		{ID: "rck-07", Name: "Sato, Yuki", Number: "13", PrimaryPosition: position.LeftField},
		{ID: "rck-08", Name: "Tran, Vi", Number: "19", PrimaryPosition: position.CenterField},
		{ID: "rck-09", Name: "Usman, Nia", Number: "27", PrimaryPosition: position.RightField},
		{ID: "rck-10", Name: "Voss, Max", Number: "33"},
	}

	out := make([]roster.Player, 0, len(comets)+len(rockford))
	for _, p := range comets {
		p.TeamID = TeamIDComets
		p.JoinedAt = joined
		out = append(out, p)
	}
	for _, p := range rockford {
		p.TeamID = TeamIDRockford
		p.JoinedAt = joined
		out = append(out, p)
	}
	return out
}
