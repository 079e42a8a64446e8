package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/internal/validate"
	"github.com/mirsglobal/website/pkg/repository"
)

// Notifier relays a stored record as a transactional email.
type Notifier interface {
	SendEnquiry(ctx context.Context, e *models.Enquiry) error
	SendApplication(ctx context.Context, a *models.CareerApplication) error
	Configured() bool
}

type EnquiriesHandler struct {
	repo     repository.EnquiryRepo
	notifier Notifier
}

func NewEnquiriesHandler(repo repository.EnquiryRepo, notifier Notifier) *EnquiriesHandler {
	return &EnquiriesHandler{repo: repo, notifier: notifier}
}

type enquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Service  string `json:"service"`
	Message  string `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create validates an enquiry, stores it, and relays the notification email.
// Validation failures abort before any write. The store write is not rolled
// back when the relay fails; the caller sees a relay error and may retry.
func (h *EnquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	e := &models.Enquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Service:  req.Service,
		Message:  req.Message,
	}

	if errs := validate.Enquiry(e); len(errs) > 0 {
		writeJSON(w, map[string]any{"errors": errs}, http.StatusBadRequest)
		return
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC().UnixMilli()

	if err := h.repo.CreateEnquiry(r.Context(), e); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.notifier.SendEnquiry(r.Context(), e); err != nil {
		// the enquiry is already persisted at this point
		logger.Error("enquiry email relay failed", slog.String("id", e.ID), slog.Any("err", err))
		writeError(w, "Failed to send email notification", http.StatusBadGateway)
		return
	}

	writeJSON(w, submitResponse{
		Success: true,
		Message: "Enquiry submitted successfully and email sent!",
	}, http.StatusCreated)
}
