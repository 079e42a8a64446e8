// Package mailer composes and sends the notification emails behind the two
// relay functions.
package mailer

import (
	"context"
	"fmt"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/pkg/resend"
)

// Sender is the slice of pkg/resend the mailer needs; tests substitute it.
type Sender interface {
	Send(ctx context.Context, msg resend.Message) (string, error)
	Configured() bool
}

// Service turns stored records into notification emails.
type Service struct {
	sender Sender
	from   string
	to     []string
}

func New(sender Sender, from string, to []string) *Service {
	return &Service{sender: sender, from: from, to: to}
}

// Configured reports whether the underlying email API is usable.
func (s *Service) Configured() bool {
	return s.sender.Configured()
}

// SendEnquiry relays one enquiry as an HTML email. The record has already
// been persisted; a failure here is not rolled back.
func (s *Service) SendEnquiry(ctx context.Context, e *models.Enquiry) error {
	body, err := enquiryBody(e)
	if err != nil {
		return fmt.Errorf("compose enquiry email: %w", err)
	}

	_, err = s.sender.Send(ctx, resend.Message{
		From:    s.from,
		To:      s.to,
		Subject: fmt.Sprintf("New Enquiry from %s", e.Name),
		HTML:    body,
	})
	return err
}

// SendApplication relays one career application as an HTML email.
func (s *Service) SendApplication(ctx context.Context, a *models.CareerApplication) error {
	body, err := applicationBody(a)
	if err != nil {
		return fmt.Errorf("compose application email: %w", err)
	}

	_, err = s.sender.Send(ctx, resend.Message{
		From:    s.from,
		To:      s.to,
		Subject: fmt.Sprintf("New Career Application from %s", a.Name),
		HTML:    body,
	})
	return err
}
