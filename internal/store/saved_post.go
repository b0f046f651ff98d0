package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

func GetSavedPost(ctx context.Context, db database.DB, clientID, postID int) (*model.SavedPost, error) {
	row := db.QueryRow(ctx,
		`SELECT id, client_id, post_id, saved_at
		 FROM saved_posts WHERE client_id = $1 AND post_id = $2`,
		clientID, postID,
	)
	sp := &model.SavedPost{}
	if err := row.Scan(&sp.ID, &sp.ClientID, &sp.PostID, &sp.SavedAt); err != nil {
		return nil, fmt.Errorf("GetSavedPost: %w", err)
	}
	return sp, nil
}

func CreateSavedPost(ctx context.Context, db database.DB, clientID, postID int) (*model.SavedPost, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO saved_posts (client_id, post_id)
		 VALUES ($1, $2)
		 RETURNING id, client_id, post_id, saved_at`,
		clientID, postID,
	)
	sp := &model.SavedPost{}
	if err := row.Scan(&sp.ID, &sp.ClientID, &sp.PostID, &sp.SavedAt); err != nil {
		return nil, fmt.Errorf("CreateSavedPost: %w", err)
	}
	return sp, nil
}

// ListSavedPosts 列出收藏，最近收藏的在前，附帶貼文摘要
func ListSavedPosts(ctx context.Context, db database.DB, clientID, page, limit int) ([]model.SavedPostDetail, error) {
	offset := (page - 1) * limit
	rows, err := db.Query(ctx,
		`SELECT sp.id, sp.client_id, sp.post_id, sp.saved_at,
		        p.title, p.description, p.price, p.media_url, p.type,
		        c.name AS category_name,
		        u.name AS advertiser_name
		 FROM saved_posts sp
		 JOIN posts p ON sp.post_id = p.id
		 LEFT JOIN categories c ON p.category_id = c.id
		 JOIN users u ON p.advertiser_id = u.id
		 WHERE sp.client_id = $1
		 ORDER BY sp.saved_at DESC
		 LIMIT $2 OFFSET $3`,
		clientID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSavedPosts: %w", err)
	}
	defer rows.Close()

	var saved []model.SavedPostDetail
	for rows.Next() {
		var d model.SavedPostDetail
		if err := rows.Scan(
			&d.ID,
			&d.ClientID,
			&d.PostID,
			&d.SavedAt,
			&d.Title,
			&d.Description,
			&d.Price,
			&d.MediaURL,
			&d.Type,
			&d.CategoryName,
			&d.AdvertiserName,
		); err != nil {
			return nil, fmt.Errorf("ListSavedPosts: %w", err)
		}
		saved = append(saved, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSavedPosts: %w", err)
	}
	return saved, nil
}

func CountSavedPosts(ctx context.Context, db database.DB, clientID int) (int, error) {
	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_posts WHERE client_id = $1`,
		clientID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountSavedPosts: %w", err)
	}
	return total, nil
}
