package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// Session methods. The table mirrors the single persisted session record:
// saving a session replaces whatever was stored before.

func (r *SQLiteRepo) SaveSession(ctx context.Context, s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	if _, err := r.conn.Exec(ctx, `DELETE FROM admin_sessions`); err != nil {
		return err
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO admin_sessions (id, admin_id, username, email, login_time) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.AdminID, s.Username, s.Email, s.LoginTime)
	return err
}

func (r *SQLiteRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, admin_id, username, email, login_time FROM admin_sessions WHERE id = ?`, id)
	var s models.Session
	if err := row.Scan(&s.ID, &s.AdminID, &s.Username, &s.Email, &s.LoginTime); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &s, nil
}

func (r *SQLiteRepo) UpdateLoginTime(ctx context.Context, id string, loginTime int64) error {
	res, err := r.conn.Exec(ctx, `UPDATE admin_sessions SET login_time = ? WHERE id = ?`, loginTime, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("session not found")
	}

	return nil
}

func (r *SQLiteRepo) DeleteSessions(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM admin_sessions`)
	return err
}

func (r *SQLiteRepo) LatestSession(ctx context.Context) (*models.Session, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, admin_id, username, email, login_time FROM admin_sessions ORDER BY login_time DESC LIMIT 1`)
	var s models.Session
	if err := row.Scan(&s.ID, &s.AdminID, &s.Username, &s.Email, &s.LoginTime); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &s, nil
}
