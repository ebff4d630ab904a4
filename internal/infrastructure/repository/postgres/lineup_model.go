package postgres

import "time"

type lineupTableModel struct {
	ID        int64     `db:"id"`
	GameID    string    `db:"game_public_id"`
	TeamID    string    `db:"team_public_id"`
	Entries   []byte    `db:"entries"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
