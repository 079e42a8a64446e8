package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/internal/validate"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// RelayHandler serves the standalone email-relay endpoints. Unlike the
// submission endpoints it stores nothing; the payload is validated and
// forwarded to the transactional-email API.
type RelayHandler struct {
	notifier          Notifier
	enquirySchema     *jsonschema.Schema
	applicationSchema *jsonschema.Schema
}

func NewRelayHandler(notifier Notifier) (*RelayHandler, error) {
	enquirySchema, err := loadSchema("schemas/enquiry.json")
	if err != nil {
		return nil, err
	}
	applicationSchema, err := loadSchema("schemas/career_application.json")
	if err != nil {
		return nil, err
	}
	return &RelayHandler{
		notifier:          notifier,
		enquirySchema:     enquirySchema,
		applicationSchema: applicationSchema,
	}, nil
}

func loadSchema(name string) (*jsonschema.Schema, error) {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	return rs, nil
}

type requiredField struct {
	label string
	value string
}

// SendEnquiryEmail relays an enquiry payload without storing it.
func (h *RelayHandler) SendEnquiryEmail(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	keyErrs, err := h.enquirySchema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var req enquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	required := []requiredField{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Location", req.Location},
		{"Service", req.Service},
		{"Message", req.Message},
	}
	if msg := firstMissing(required); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if len(keyErrs) > 0 {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if msg := relayFieldCheck(req.Name, req.Email, req.Phone, req.Location); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	if !h.notifier.Configured() {
		writeError(w, "Email service configuration error", http.StatusInternalServerError)
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
	if err := h.notifier.SendEnquiry(r.Context(), e); err != nil {
		writeError(w, "Failed to send email notification", http.StatusInternalServerError)
		return
	}

	writeJSON(w, submitResponse{Success: true, Message: "Email sent successfully"}, http.StatusOK)
}

// SendApplicationEmail relays a career application payload without storing it.
func (h *RelayHandler) SendApplicationEmail(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	keyErrs, err := h.applicationSchema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var req applicationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	required := []requiredField{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Location", req.Location},
		{"Position", req.Position},
		{"Experience", req.Experience},
		{"Resume", req.Resume},
		{"Cover letter", req.CoverLetter},
	}
	if msg := firstMissing(required); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if len(keyErrs) > 0 {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if msg := relayFieldCheck(req.Name, req.Email, req.Phone, req.Location); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	if !h.notifier.Configured() {
		writeError(w, "Email service configuration error", http.StatusInternalServerError)
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
	if err := h.notifier.SendApplication(r.Context(), a); err != nil {
		writeError(w, "Failed to send email notification", http.StatusInternalServerError)
		return
	}

	writeJSON(w, submitResponse{Success: true, Message: "Email sent successfully"}, http.StatusOK)
}

func firstMissing(fields []requiredField) string {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.label + " is required"
		}
	}
	return ""
}

// relayFieldCheck re-runs the shape validators on the fields every payload
// carries. The client validates the same rules; this guards a bypassed client.
func relayFieldCheck(name, email, phone, location string) string {
	if !validate.ValidName(name) {
		return "Name should contain only alphabets"
	}
	if !validate.ValidEmail(email) {
		return "Invalid email format"
	}
	if !validate.ValidPhone(phone) {
		return "Phone number must be 10 digits"
	}
	if !validate.ValidLocation(location) {
		return "Location should contain only alphabets"
	}
	return ""
}
