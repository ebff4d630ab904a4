package postgres

import "time"

type gameConfigTableModel struct {
	ID        int64     `db:"id"`
	GameID    string    `db:"game_public_id"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
