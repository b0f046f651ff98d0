package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (advertiser_id, category_id, type, title, description, price, old_price,
		                    with_reservation, reservation_time, reservation_limit, social_link, media_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		p.AdvertiserID,
		p.CategoryID,
		p.Type,
		p.Title,
		p.Description,
		p.Price,
		p.OldPrice,
		p.WithReservation,
		p.ReservationTime,
		p.ReservationLimit,
		p.SocialLink,
		p.MediaURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", err)
	}
	return p, nil
}

func GetPostByID(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`SELECT id, advertiser_id, category_id, type, title, description, price, old_price,
		        with_reservation, reservation_time, reservation_limit, social_link, media_url, created_at
		 FROM posts WHERE id = $1`,
		postID,
	)
	p := &model.Post{}
	if err := scanPost(row, p); err != nil {
		return nil, fmt.Errorf("GetPostByID: %w", err)
	}
	return p, nil
}

// GetPostDetail 取得貼文連同分類、廣告主與 active 預約數
func GetPostDetail(ctx context.Context, db database.DB, postID int) (*model.PostDetail, error) {
	row := db.QueryRow(ctx,
		`SELECT p.id, p.advertiser_id, p.category_id, p.type, p.title, p.description, p.price, p.old_price,
		        p.with_reservation, p.reservation_time, p.reservation_limit, p.social_link, p.media_url, p.created_at,
		        c.name AS category_name,
		        u.name AS advertiser_name,
		        u.email AS advertiser_email,
		        COUNT(r.id) FILTER (WHERE r.status = 'active') AS reservation_count
		 FROM posts p
		 LEFT JOIN categories c ON p.category_id = c.id
		 JOIN users u ON p.advertiser_id = u.id
		 LEFT JOIN reservations r ON p.id = r.post_id AND r.status = 'active'
		 WHERE p.id = $1
		 GROUP BY p.id, c.name, u.name, u.email`,
		postID,
	)
	d := &model.PostDetail{}
	if err := scanPostRow(row, d,
		&d.CategoryName,
		&d.AdvertiserName,
		&d.AdvertiserEmail,
		&d.ReservationCount,
	); err != nil {
		return nil, fmt.Errorf("GetPostDetail: %w", err)
	}
	return d, nil
}

// ListPosts 依條件分頁列出貼文，新的在前，附帶 active 預約數
func ListPosts(ctx context.Context, db database.DB, f *Filter, page, limit int) ([]model.PostDetail, error) {
	offset := (page - 1) * limit
	query := fmt.Sprintf(
		`SELECT p.id, p.advertiser_id, p.category_id, p.type, p.title, p.description, p.price, p.old_price,
		        p.with_reservation, p.reservation_time, p.reservation_limit, p.social_link, p.media_url, p.created_at,
		        c.name AS category_name,
		        u.name AS advertiser_name,
		        COUNT(r.id) FILTER (WHERE r.status = 'active') AS reservation_count
		 FROM posts p
		 LEFT JOIN categories c ON p.category_id = c.id
		 JOIN users u ON p.advertiser_id = u.id
		 LEFT JOIN reservations r ON p.id = r.post_id AND r.status = 'active'
		 %s
		 GROUP BY p.id, c.name, u.name
		 ORDER BY p.created_at DESC
		 LIMIT $%d OFFSET $%d`,
		f.Where(), f.Placeholder(), f.Placeholder()+1,
	)
	args := append(f.Args(), limit, offset)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	var posts []model.PostDetail
	for rows.Next() {
		var d model.PostDetail
		if err := scanPostRow(rows, &d,
			&d.CategoryName,
			&d.AdvertiserName,
			&d.ReservationCount,
		); err != nil {
			return nil, fmt.Errorf("ListPosts: %w", err)
		}
		posts = append(posts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

// CountPosts 依同一組條件計算貼文總數，供分頁使用
func CountPosts(ctx context.Context, db database.DB, f *Filter) (int, error) {
	query := fmt.Sprintf(
		`SELECT COUNT(DISTINCT p.id)
		 FROM posts p
		 LEFT JOIN categories c ON p.category_id = c.id
		 JOIN users u ON p.advertiser_id = u.id
		 %s`,
		f.Where(),
	)
	var total int
	if err := db.QueryRow(ctx, query, f.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountPosts: %w", err)
	}
	return total, nil
}

// ListPostsByAdvertiser 列出單一廣告主的貼文
// 預約數計全部狀態，與 ListPosts 只計 active 不同
func ListPostsByAdvertiser(ctx context.Context, db database.DB, advertiserID, page, limit int) ([]model.PostDetail, error) {
	offset := (page - 1) * limit
	rows, err := db.Query(ctx,
		`SELECT p.id, p.advertiser_id, p.category_id, p.type, p.title, p.description, p.price, p.old_price,
		        p.with_reservation, p.reservation_time, p.reservation_limit, p.social_link, p.media_url, p.created_at,
		        c.name AS category_name,
		        COUNT(r.id) AS reservation_count
		 FROM posts p
		 LEFT JOIN categories c ON p.category_id = c.id
		 LEFT JOIN reservations r ON p.id = r.post_id
		 WHERE p.advertiser_id = $1
		 GROUP BY p.id, c.name
		 ORDER BY p.created_at DESC
		 LIMIT $2 OFFSET $3`,
		advertiserID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPostsByAdvertiser: %w", err)
	}
	defer rows.Close()

	var posts []model.PostDetail
	for rows.Next() {
		var d model.PostDetail
		if err := scanPostRow(rows, &d,
			&d.CategoryName,
			&d.ReservationCount,
		); err != nil {
			return nil, fmt.Errorf("ListPostsByAdvertiser: %w", err)
		}
		posts = append(posts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPostsByAdvertiser: %w", err)
	}
	return posts, nil
}

func CountPostsByAdvertiser(ctx context.Context, db database.DB, advertiserID int) (int, error) {
	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE advertiser_id = $1`,
		advertiserID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountPostsByAdvertiser: %w", err)
	}
	return total, nil
}

// scanner 抽象 pgx.Row 與 pgx.Rows 共用的 Scan
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner, p *model.Post) error {
	return row.Scan(
		&p.ID,
		&p.AdvertiserID,
		&p.CategoryID,
		&p.Type,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.OldPrice,
		&p.WithReservation,
		&p.ReservationTime,
		&p.ReservationLimit,
		&p.SocialLink,
		&p.MediaURL,
		&p.CreatedAt,
	)
}

func scanPostRow(row scanner, d *model.PostDetail, extra ...any) error {
	dest := []any{
		&d.ID,
		&d.AdvertiserID,
		&d.CategoryID,
		&d.Type,
		&d.Title,
		&d.Description,
		&d.Price,
		&d.OldPrice,
		&d.WithReservation,
		&d.ReservationTime,
		&d.ReservationLimit,
		&d.SocialLink,
		&d.MediaURL,
		&d.CreatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}
