package mock

import (
	"context"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
)

// Test helpers and mocks
type Mocks struct {
	Users        *UserRepo
	Sessions     *SessionRepo
	Enquiries    *EnquiryRepo
	Applications *ApplicationRepo
	Posts        *PostRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:        &UserRepo{},
		Sessions:     &SessionRepo{},
		Enquiries:    &EnquiryRepo{},
		Applications: &ApplicationRepo{},
		Posts:        &PostRepo{},
	}
}

type UserRepo struct {
	Stored *models.AdminUser
	GetErr error
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) UpsertAdminUser(ctx context.Context, u *models.AdminUser) error {
	m.Stored = u
	return nil
}

type SessionRepo struct {
	Stored  *models.Session
	SaveErr error
}

func (m *SessionRepo) SaveSession(ctx context.Context, s *models.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = s
	return nil
}

func (m *SessionRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *SessionRepo) UpdateLoginTime(ctx context.Context, id string, loginTime int64) error {
	if m.Stored == nil || m.Stored.ID != id {
		return fmt.Errorf("session not found")
	}
	m.Stored.LoginTime = loginTime
	return nil
}

func (m *SessionRepo) DeleteSessions(ctx context.Context) error {
	m.Stored = nil
	return nil
}

func (m *SessionRepo) LatestSession(ctx context.Context) (*models.Session, error) {
	return m.Stored, nil
}

type EnquiryRepo struct {
	Stored    []models.Enquiry
	CreateErr error
}

func (m *EnquiryRepo) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *e)
	return nil
}

type ApplicationRepo struct {
	Stored    []models.CareerApplication
	CreateErr error
}

func (m *ApplicationRepo) CreateApplication(ctx context.Context, a *models.CareerApplication) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *a)
	return nil
}

type PostRepo struct {
	Stored    []models.BlogPost
	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *PostRepo) CreatePost(ctx context.Context, p *models.BlogPost) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *p)
	return nil
}

func (m *PostRepo) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			p := m.Stored[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *PostRepo) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *PostRepo) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == p.ID {
			m.Stored[i] = *p
			return nil
		}
	}
	return fmt.Errorf("post not found")
}

func (m *PostRepo) DeletePost(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return nil
		}
	}
	return nil
}
