package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// BlogPost methods
func (r *SQLiteRepo) CreatePost(ctx context.Context, p *models.BlogPost) error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO blog_posts (id, title, description, content, image, category, author, read_time, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Content, p.Image, p.Category, p.Author, p.ReadTime, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *SQLiteRepo) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, description, content, image, category, author, read_time, created_at, updated_at FROM blog_posts WHERE id = ?`, id)
	var p models.BlogPost
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Content, &p.Image, &p.Category, &p.Author, &p.ReadTime, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepo) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, description, content, image, category, author, read_time, created_at, updated_at FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Content, &p.Image, &p.Category, &p.Author, &p.ReadTime, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}

	res, err := r.conn.Exec(ctx, `UPDATE blog_posts SET title = ?, description = ?, content = ?, image = ?, category = ?, author = ?, read_time = ?, updated_at = ? WHERE id = ?`,
		p.Title, p.Description, p.Content, p.Image, p.Category, p.Author, p.ReadTime, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post not found")
	}

	return nil
}

func (r *SQLiteRepo) DeletePost(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	return err
}
