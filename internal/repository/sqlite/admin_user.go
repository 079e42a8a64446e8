package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// AdminUser methods
func (r *SQLiteRepo) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, email, password_hash, created_at FROM admin_users WHERE username = ?`, username)
	var u models.AdminUser
	var pw sql.NullString
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &pw, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		u.PasswordHash = pw.String
	}

	return &u, nil
}

func (r *SQLiteRepo) UpsertAdminUser(ctx context.Context, u *models.AdminUser) error {
	if u == nil {
		return fmt.Errorf("admin user is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO admin_users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET email = excluded.email, password_hash = excluded.password_hash`,
		u.ID, u.Username, u.Email, u.PasswordHash, now())
	return err
}
