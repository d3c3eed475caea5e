package models

import "time"

// Vote records that a user voted for a link; at most one per (user, link).
type Vote struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	LinkID    string    `db:"link_id"`
	CreatedAt time.Time `db:"created_at"`
}
