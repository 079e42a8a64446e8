package api

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/internal/validate"
	"github.com/mirsglobal/website/pkg/repository"
)

type ApplicationsHandler struct {
	repo     repository.ApplicationRepo
	notifier Notifier
}

func NewApplicationsHandler(repo repository.ApplicationRepo, notifier Notifier) *ApplicationsHandler {
	return &ApplicationsHandler{repo: repo, notifier: notifier}
}

type applicationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Position    string `json:"position"`
	Experience  string `json:"experience"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

// Create validates a career application, stores it, and relays the
// notification email. Same store-then-relay shape as enquiries.
func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	a := &models.CareerApplication{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Position:    req.Position,
		Experience:  req.Experience,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	}

	if errs := validate.Application(a); len(errs) > 0 {
		writeJSON(w, map[string]any{"errors": errs}, http.StatusBadRequest)
		return
	}

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC().UnixMilli()

	if err := h.repo.CreateApplication(r.Context(), a); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.notifier.SendApplication(r.Context(), a); err != nil {
		logger.Error("application email relay failed", slog.String("id", a.ID), slog.Any("err", err))
		writeError(w, "Failed to send email notification", http.StatusBadGateway)
		return
	}

	writeJSON(w, submitResponse{
		Success: true,
		Message: "Application submitted successfully and email sent!",
	}, http.StatusCreated)
}
