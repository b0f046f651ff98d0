package model

// PostEngagement 對應 v_post_engagement 檢視表的一列
type PostEngagement struct {
	PostID                  int    `db:"post_id" json:"post_id"`
	Title                   string `db:"title" json:"title"`
	CommentsCount           int    `db:"comments_count" json:"comments_count"`
	SavesCount              int    `db:"saves_count" json:"saves_count"`
	ReservationsCount       int    `db:"reservations_count" json:"reservations_count"`
	ActiveReservationsCount int    `db:"active_reservations_count" json:"active_reservations_count"`
}
