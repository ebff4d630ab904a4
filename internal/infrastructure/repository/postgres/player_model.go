package postgres

import (
	"database/sql"
	"time"

	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/domain/roster"
)

type playerTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	TeamID            string         `db:"team_public_id"`
	Name              string         `db:"name"`
	Nickname          sql.NullString `db:"nickname"`
	Number            sql.NullString `db:"number"`
	PrimaryPosition   sql.NullString `db:"primary_position"`
	SecondaryPosition sql.NullString `db:"secondary_position"`
	JoinedAt          time.Time      `db:"joined_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

func playerFromRow(row playerTableModel) roster.Player {
	return roster.Player{
		ID:                row.PublicID,
		TeamID:            row.TeamID,
		Name:              row.Name,
		Nickname:          row.Nickname.String,
		Number:            row.Number.String,
		PrimaryPosition:   position.Position(row.PrimaryPosition.String),
		SecondaryPosition: position.Position(row.SecondaryPosition.String),
		JoinedAt:          row.JoinedAt,
	}
}
