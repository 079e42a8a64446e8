package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/internal/session"
	"github.com/mirsglobal/website/pkg/repository"
)

type AuthHandler struct {
	users    repository.AdminUserRepo
	sessions repository.SessionRepo
	secret   string
	clock    *session.Clock
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.AdminUserRepo, sr repository.SessionRepo, secret string, clock *session.Clock) *AuthHandler {
	return &AuthHandler{users: ur, sessions: sr, secret: secret, clock: clock}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	LoginTime int64  `json:"login_time"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

type sessionInfoResponse struct {
	TimeLeft  int64  `json:"time_left"`
	Formatted string `json:"formatted"`
	Expiring  bool   `json:"expiring"`
}

// Login checks the submitted credentials against the single stored record.
// A missing user, a lookup error, and a wrong password all produce the same
// answer, so the caller learns nothing about which check failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	user, err := h.users.GetByUsername(ctx, req.Username)
	if err != nil || user == nil {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	loginTime := time.Now().UnixMilli()
	s := &models.Session{
		ID:        uuid.NewString(),
		AdminID:   user.ID,
		Username:  user.Username,
		Email:     user.Email,
		LoginTime: loginTime,
	}
	if err := h.sessions.SaveSession(ctx, s); err != nil {
		http.Error(w, "Error persisting session", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.mintToken(s)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	h.clock.Start(loginTime)

	writeJSON(w, loginResponse{
		Token: tokenStr,
		User:  sessionUser{ID: user.ID, Username: user.Username, Email: user.Email, LoginTime: loginTime},
	}, http.StatusOK)
}

// Logout drops the session unconditionally. Safe to call when nobody is
// signed in.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clock.Stop()
	if err := h.sessions.DeleteSessions(r.Context()); err != nil {
		logger.Error("clear sessions on logout", slog.Any("err", err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"message":"signed out"}`)
}

// Extend rewrites the persisted login timestamp to now and restarts the
// countdown; the previous timer is cancelled before the new one starts.
func (h *AuthHandler) Extend(w http.ResponseWriter, r *http.Request) {
	s, ok := r.Context().Value(CtxSession).(*models.Session)
	if !ok || s == nil {
		http.Error(w, "Session expired", http.StatusUnauthorized)
		return
	}

	loginTime := time.Now().UnixMilli()
	if err := h.sessions.UpdateLoginTime(r.Context(), s.ID, loginTime); err != nil {
		http.Error(w, "Error extending session", http.StatusInternalServerError)
		return
	}
	s.LoginTime = loginTime

	tokenStr, err := h.mintToken(s)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	h.clock.Start(loginTime)

	writeJSON(w, loginResponse{
		Token: tokenStr,
		User:  sessionUser{ID: s.AdminID, Username: s.Username, Email: s.Email, LoginTime: loginTime},
	}, http.StatusOK)
}

// SessionInfo reports the countdown state for the timeout-warning UI.
func (h *AuthHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	s, ok := r.Context().Value(CtxSession).(*models.Session)
	if !ok || s == nil {
		http.Error(w, "Session expired", http.StatusUnauthorized)
		return
	}

	left := session.TimeLeft(s.LoginTime)
	writeJSON(w, sessionInfoResponse{
		TimeLeft:  left,
		Formatted: session.FormatTime(left),
		Expiring:  left > 0 && left <= session.WarningTime.Milliseconds(),
	}, http.StatusOK)
}

// Restore resumes a persisted session at startup. A stale or missing record
// means the service starts signed out; a stale record is also cleared.
func (h *AuthHandler) Restore(ctx context.Context) error {
	s, err := h.sessions.LatestSession(ctx)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}
	if s == nil {
		return nil
	}

	if !session.IsValid(s.LoginTime) {
		if err := h.sessions.DeleteSessions(ctx); err != nil {
			return fmt.Errorf("discard stale session: %w", err)
		}
		return nil
	}

	h.clock.Start(s.LoginTime)
	logger.Info("session restored",
		slog.String("username", s.Username),
		slog.String("time_left", session.FormatTime(session.TimeLeft(s.LoginTime))),
	)
	return nil
}

func (h *AuthHandler) mintToken(s *models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": s.ID,
		"sub": s.Username,
		"exp": (s.LoginTime + session.SessionDuration.Milliseconds()) / 1000,
	})
	return token.SignedString([]byte(h.secret))
}
