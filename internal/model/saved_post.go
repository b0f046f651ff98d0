package model

import "time"

type SavedPost struct {
	ID       int       `db:"id" json:"id"`
	ClientID int       `db:"client_id" json:"client_id"`
	PostID   int       `db:"post_id" json:"post_id"`
	SavedAt  time.Time `db:"saved_at" json:"saved_at"`
}
