package repository

import (
	"context"

	"github.com/mirsglobal/website/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type AdminUserRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	UpsertAdminUser(ctx context.Context, u *models.AdminUser) error
}

// SessionRepo mirrors the single persisted session record. Saving a session
// replaces whatever record was there before.
type SessionRepo interface {
	SaveSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	UpdateLoginTime(ctx context.Context, id string, loginTime int64) error
	DeleteSessions(ctx context.Context) error
	LatestSession(ctx context.Context) (*models.Session, error)
}

type EnquiryRepo interface {
	CreateEnquiry(ctx context.Context, e *models.Enquiry) error
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.CareerApplication) error
}

type PostRepo interface {
	CreatePost(ctx context.Context, p *models.BlogPost) error
	GetPost(ctx context.Context, id string) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	UpdatePost(ctx context.Context, p *models.BlogPost) error
	DeletePost(ctx context.Context, id string) error
}
