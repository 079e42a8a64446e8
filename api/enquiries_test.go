package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirsglobal/website/api"
	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/pkg/repository/mock"
)

// fakeNotifier records relayed records instead of calling the email API.
type fakeNotifier struct {
	enquiries    []*models.Enquiry
	applications []*models.CareerApplication
	sendErr      error
	unconfigured bool
}

func (f *fakeNotifier) SendEnquiry(ctx context.Context, e *models.Enquiry) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.enquiries = append(f.enquiries, e)
	return nil
}

func (f *fakeNotifier) SendApplication(ctx context.Context, a *models.CareerApplication) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.applications = append(f.applications, a)
	return nil
}

func (f *fakeNotifier) Configured() bool { return !f.unconfigured }

func validEnquiry() map[string]string {
	return map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "9876543210",
		"location": "Chennai, India",
		"service":  "data-entry",
		"message":  "We need ongoing data processing support.",
	}
}

func TestCreateEnquiry(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mutate     func(m map[string]string)
		prepare    func(m *mock.Mocks, n *fakeNotifier)
		wantStatus int
		wantStored int
		wantSent   int
		errField   string
	}{
		{
			name:       "InvalidRequest",
			body:       "not a json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Success",
			wantStatus: http.StatusCreated,
			wantStored: 1,
			wantSent:   1,
		},
		{
			name:       "MissingName",
			mutate:     func(m map[string]string) { m["name"] = "" },
			wantStatus: http.StatusBadRequest,
			errField:   "name",
		},
		{
			name:       "BadEmail",
			mutate:     func(m map[string]string) { m["email"] = "jane@@example" },
			wantStatus: http.StatusBadRequest,
			errField:   "email",
		},
		{
			name: "HyphenatedPhoneRejected",
			// only whitespace is stripped before the digit check
			mutate:     func(m map[string]string) { m["phone"] = "987-654-3210" },
			wantStatus: http.StatusBadRequest,
			errField:   "phone",
		},
		{
			name:       "SpacedPhoneAccepted",
			mutate:     func(m map[string]string) { m["phone"] = "98765 43210" },
			wantStatus: http.StatusCreated,
			wantStored: 1,
			wantSent:   1,
		},
		{
			name:       "UnknownService",
			mutate:     func(m map[string]string) { m["service"] = "catering" },
			wantStatus: http.StatusBadRequest,
			errField:   "service",
		},
		{
			name:   "StoreError",
			prepare: func(m *mock.Mocks, n *fakeNotifier) {
				m.Enquiries.CreateErr = errors.New("disk full")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "RelayErrorAfterStore",
			prepare: func(m *mock.Mocks, n *fakeNotifier) {
				n.sendErr = errors.New("upstream down")
			},
			wantStatus: http.StatusBadGateway,
			wantStored: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			notifier := &fakeNotifier{}
			if tt.prepare != nil {
				tt.prepare(mocks, notifier)
			}
			handler := api.NewEnquiriesHandler(mocks.Enquiries, notifier)

			body := tt.body
			if body == nil {
				m := validEnquiry()
				if tt.mutate != nil {
					tt.mutate(m)
				}
				body = m
			}
			b, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPost, "/v1/enquiries", bytes.NewReader(b))
			w := httptest.NewRecorder()
			handler.Create(w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tt.wantStatus, res.StatusCode, string(data))
			}
			if len(mocks.Enquiries.Stored) != tt.wantStored {
				t.Fatalf("expected %d stored got %d", tt.wantStored, len(mocks.Enquiries.Stored))
			}
			if len(notifier.enquiries) != tt.wantSent {
				t.Fatalf("expected %d relayed got %d", tt.wantSent, len(notifier.enquiries))
			}
			if tt.errField != "" {
				var er struct {
					Errors map[string]string `json:"errors"`
				}
				if err := json.Unmarshal(data, &er); err != nil {
					t.Fatalf("unmarshal errors: %v", err)
				}
				if er.Errors[tt.errField] == "" {
					t.Fatalf("expected error for field %q, got %v", tt.errField, er.Errors)
				}
			}
			if tt.wantStatus == http.StatusCreated {
				stored := mocks.Enquiries.Stored[0]
				if stored.ID == "" || stored.CreatedAt == 0 {
					t.Fatalf("stored enquiry missing id or timestamp: %+v", stored)
				}
			}
		})
	}
}
