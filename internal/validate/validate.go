// Package validate holds the field validators shared by the submission
// endpoints and the email relay functions.
package validate

import (
	"regexp"
	"strings"

	"github.com/mirsglobal/website/internal/models"
)

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\d{10}$`)
	locationRe = regexp.MustCompile(`^[A-Za-z\s,.-]+$`)
	resumeRe   = regexp.MustCompile(`^https?://.+`)
	spaceRe    = regexp.MustCompile(`\s`)
)

// Services the enquiry form offers, keyed the way the site select options are.
var Services = []string{
	"data-entry",
	"data-processing",
	"publication",
	"data-conversion",
	"web-content",
	"research",
	"other",
}

// Errors maps a field name to its user-facing validation message.
type Errors map[string]string

func Name(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Name is required"
	}
	if !nameRe.MatchString(v) {
		return "Name should contain only alphabets"
	}
	return ""
}

func Email(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(v) {
		return "Please enter a valid email address"
	}
	return ""
}

// Phone requires exactly 10 digits after stripping whitespace. Only
// whitespace is stripped, so "987-654-3210" fails; the hyphens stay.
func Phone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Phone number is required"
	}
	if !phoneRe.MatchString(spaceRe.ReplaceAllString(v, "")) {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

func Location(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Location is required"
	}
	if !locationRe.MatchString(v) {
		return "Location should contain only alphabets"
	}
	return ""
}

func Service(v string) string {
	for _, s := range Services {
		if v == s {
			return ""
		}
	}
	return "Please select a service"
}

func Position(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Position is required"
	}
	return ""
}

func Experience(v string) string {
	if v == "" {
		return "Please select your experience level"
	}
	return ""
}

func Message(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Message is required"
	}
	return ""
}

func Resume(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Resume/CV link is required"
	}
	if !resumeRe.MatchString(v) {
		return "Please enter a valid URL (starting with http:// or https://)"
	}
	return ""
}

func CoverLetter(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Cover letter is required"
	}
	if len(strings.TrimSpace(v)) < 50 {
		return "Cover letter should be at least 50 characters long"
	}
	return ""
}

// ValidName reports whether the value matches the name character class.
func ValidName(v string) bool { return nameRe.MatchString(v) }

// ValidEmail reports whether the value has the expected email shape.
func ValidEmail(v string) bool { return emailRe.MatchString(v) }

// ValidPhone reports whether the value is 10 digits after stripping whitespace.
func ValidPhone(v string) bool { return phoneRe.MatchString(spaceRe.ReplaceAllString(v, "")) }

// ValidLocation reports whether the value matches the location character class.
func ValidLocation(v string) bool { return locationRe.MatchString(v) }

// Enquiry runs every enquiry field validator and collects failures per field.
func Enquiry(e *models.Enquiry) Errors {
	errs := Errors{}
	addErr(errs, "name", Name(e.Name))
	addErr(errs, "email", Email(e.Email))
	addErr(errs, "phone", Phone(e.Phone))
	addErr(errs, "location", Location(e.Location))
	addErr(errs, "service", Service(e.Service))
	addErr(errs, "message", Message(e.Message))
	return errs
}

// Application runs every career application field validator.
func Application(a *models.CareerApplication) Errors {
	errs := Errors{}
	addErr(errs, "name", Name(a.Name))
	addErr(errs, "email", Email(a.Email))
	addErr(errs, "phone", Phone(a.Phone))
	addErr(errs, "location", Location(a.Location))
	addErr(errs, "position", Position(a.Position))
	addErr(errs, "experience", Experience(a.Experience))
	addErr(errs, "resume", Resume(a.Resume))
	addErr(errs, "coverLetter", CoverLetter(a.CoverLetter))
	return errs
}

func addErr(errs Errors, field, msg string) {
	if msg != "" {
		errs[field] = msg
	}
}
