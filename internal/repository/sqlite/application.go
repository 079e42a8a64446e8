package sqlite

import (
	"context"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// CareerApplication methods. Applications are write-once, like enquiries.
func (r *SQLiteRepo) CreateApplication(ctx context.Context, a *models.CareerApplication) error {
	if a == nil {
		return fmt.Errorf("application is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO career_applications (id, name, email, phone, location, position, experience, resume, cover_letter, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Email, a.Phone, a.Location, a.Position, a.Experience, a.Resume, a.CoverLetter, a.CreatedAt)
	return err
}
