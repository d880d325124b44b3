package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pruthviraj0106/adultplatform/internal/model"
)

func (s *Store) ListCollections(ctx context.Context) ([]model.Collection, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, thumbnail_data, tier, type, price, created_at
		FROM collections
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []model.Collection
	for rows.Next() {
		var col model.Collection
		if err := rows.Scan(&col.ID, &col.Title, &col.Description, &col.Thumbnail, &col.Tier, &col.Type, &col.Price, &col.CreatedAt); err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}
	return collections, rows.Err()
}

func (s *Store) GetCollection(ctx context.Context, id int) (model.Collection, error) {
	var col model.Collection
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, description, thumbnail_data, tier, type, price, created_at
		FROM collections
		WHERE id = $1
	`, id)
	err := row.Scan(&col.ID, &col.Title, &col.Description, &col.Thumbnail, &col.Tier, &col.Type, &col.Price, &col.CreatedAt)
	return col, err
}

func (s *Store) CreateCollection(ctx context.Context, title, description string, thumbnail []byte, tier, colType string, price float64) (model.Collection, error) {
	var col model.Collection
	row := s.pool.QueryRow(ctx, `
		INSERT INTO collections (title, description, thumbnail_data, tier, type, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, thumbnail_data, tier, type, price, created_at
	`, title, description, thumbnail, tier, colType, price)
	err := row.Scan(&col.ID, &col.Title, &col.Description, &col.Thumbnail, &col.Tier, &col.Type, &col.Price, &col.CreatedAt)
	return col, err
}

// DeleteCollection removes the collection; its posts go with it through the
// ON DELETE CASCADE on posts.collection_id.
func (s *Store) DeleteCollection(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, collection_id, title, description, thumbnail_data, video_data, type, duration, created_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (s *Store) ListPostsByCollection(ctx context.Context, collectionID int) ([]model.Post, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, collection_id, title, description, thumbnail_data, video_data, type, duration, created_at
		FROM posts
		WHERE collection_id = $1
		ORDER BY created_at DESC
	`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (s *Store) GetPost(ctx context.Context, id int) (model.Post, error) {
	var post model.Post
	row := s.pool.QueryRow(ctx, `
		SELECT id, collection_id, title, description, thumbnail_data, video_data, type, duration, created_at
		FROM posts
		WHERE id = $1
	`, id)
	err := row.Scan(&post.ID, &post.CollectionID, &post.Title, &post.Description, &post.Thumbnail, &post.Video, &post.Type, &post.Duration, &post.CreatedAt)
	return post, err
}

func (s *Store) CreatePost(ctx context.Context, collectionID int, title, description string, thumbnail, video []byte, postType string, duration *string) (model.Post, error) {
	var post model.Post
	row := s.pool.QueryRow(ctx, `
		INSERT INTO posts (collection_id, title, description, thumbnail_data, video_data, type, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, collection_id, title, description, thumbnail_data, video_data, type, duration, created_at
	`, collectionID, title, description, thumbnail, video, postType, duration)
	err := row.Scan(&post.ID, &post.CollectionID, &post.Title, &post.Description, &post.Thumbnail, &post.Video, &post.Type, &post.Duration, &post.CreatedAt)
	return post, err
}

func (s *Store) DeletePost(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListSubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, tier, billing, price FROM subscription_plans ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []model.SubscriptionPlan
	for rows.Next() {
		var plan model.SubscriptionPlan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Tier, &plan.Billing, &plan.Price); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.CollectionID, &post.Title, &post.Description, &post.Thumbnail, &post.Video, &post.Type, &post.Duration, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
