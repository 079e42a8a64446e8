package mailer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/pkg/resend"
)

type fakeSender struct {
	sent       []resend.Message
	sendErr    error
	configured bool
}

func (f *fakeSender) Send(ctx context.Context, msg resend.Message) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, msg)
	return "email_1", nil
}

func (f *fakeSender) Configured() bool { return f.configured }

func TestSendEnquiry(t *testing.T) {
	fs := &fakeSender{configured: true}
	svc := New(fs, "MIRS Global Solutions <support@mirsglobalsolutions.com>", []string{"dest@example.com"})

	e := &models.Enquiry{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "9876543210",
		Location: "Chennai",
		Service:  "data-entry",
		Message:  "Please reach out.",
	}
	require.NoError(t, svc.SendEnquiry(context.Background(), e))
	require.Len(t, fs.sent, 1)

	msg := fs.sent[0]
	assert.Equal(t, "New Enquiry from Jane Doe", msg.Subject)
	assert.Equal(t, []string{"dest@example.com"}, msg.To)
	assert.Contains(t, msg.HTML, "Jane Doe")
	assert.Contains(t, msg.HTML, "data-entry")
	assert.Contains(t, msg.HTML, "Please reach out.")
}

func TestSendEnquiry_EscapesMarkup(t *testing.T) {
	fs := &fakeSender{configured: true}
	svc := New(fs, "from@example.com", []string{"to@example.com"})

	e := &models.Enquiry{Name: "Jane", Message: `<script>alert("x")</script>`}
	require.NoError(t, svc.SendEnquiry(context.Background(), e))
	require.Len(t, fs.sent, 1)
	assert.NotContains(t, fs.sent[0].HTML, "<script>")
}

func TestSendApplication(t *testing.T) {
	fs := &fakeSender{configured: true}
	svc := New(fs, "from@example.com", []string{"to@example.com"})

	a := &models.CareerApplication{
		Name:        "John Smith",
		Email:       "john@example.com",
		Phone:       "9876543210",
		Location:    "Madurai",
		Position:    "Data Entry Specialist",
		Experience:  "1-3 years",
		Resume:      "https://example.com/cv.pdf",
		CoverLetter: strings.Repeat("Relevant experience. ", 5),
	}
	require.NoError(t, svc.SendApplication(context.Background(), a))
	require.Len(t, fs.sent, 1)

	msg := fs.sent[0]
	assert.Equal(t, "New Career Application from John Smith", msg.Subject)
	assert.Contains(t, msg.HTML, "Data Entry Specialist")
	assert.Contains(t, msg.HTML, "https://example.com/cv.pdf")
	assert.Contains(t, msg.HTML, "1-3 years")
}

func TestSend_ErrorPropagates(t *testing.T) {
	fs := &fakeSender{configured: true, sendErr: fmt.Errorf("boom")}
	svc := New(fs, "from@example.com", []string{"to@example.com"})

	assert.Error(t, svc.SendEnquiry(context.Background(), &models.Enquiry{Name: "x"}))
	assert.Error(t, svc.SendApplication(context.Background(), &models.CareerApplication{Name: "x"}))
}
