package sqlite

import (
	"context"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// Enquiry methods. Enquiries are write-once: there is no public update or
// delete path.
func (r *SQLiteRepo) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	if e == nil {
		return fmt.Errorf("enquiry is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO enquiries (id, name, email, phone, location, service, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.Phone, e.Location, e.Service, e.Message, e.CreatedAt)
	return err
}
