package models

import "time"

type Link struct {
	ID          string    `db:"id"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	PostedByID  string    `db:"posted_by"`
	CreatedAt   time.Time `db:"created_at"`
}
