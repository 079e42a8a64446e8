package api

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/mirsglobal/website/internal/config"
	"github.com/mirsglobal/website/internal/db"
	"github.com/mirsglobal/website/internal/mailer"
	"github.com/mirsglobal/website/internal/render"
	"github.com/mirsglobal/website/internal/repository/sqlite"
	"github.com/mirsglobal/website/internal/session"
	"github.com/mirsglobal/website/pkg/resend"
)

// SetupRoutes wires repositories, the session clock, the mail stack, and all
// handlers onto a router. The returned cleanup stops the clock and closes the
// outbound email client; the caller runs it on shutdown.
func SetupRoutes(ctx context.Context, cfg *config.Config, version, buildTime string, database *db.DB) (*mux.Router, func(), error) {
	repo := sqlite.New(database)

	clock := session.NewClock(func() {
		if err := repo.DeleteSessions(context.Background()); err != nil {
			logger.Error("clear sessions on expiry", slog.Any("err", err))
			return
		}
		logger.Info("admin session expired")
	})

	resendClient, err := resend.NewDefaultClient(cfg.Resend)
	if err != nil {
		return nil, nil, fmt.Errorf("create resend client: %w", err)
	}
	mail := mailer.New(resendClient, cfg.Resend.From, cfg.Resend.To)

	authHandler := NewAuthHandler(repo, repo, cfg.SessionSecret, clock)
	enquiriesHandler := NewEnquiriesHandler(repo, mail)
	applicationsHandler := NewApplicationsHandler(repo, mail)
	postsHandler := NewPostsHandler(repo)
	relayHandler, err := NewRelayHandler(mail)
	if err != nil {
		_ = resendClient.Close()
		return nil, nil, fmt.Errorf("create relay handler: %w", err)
	}
	renderHandler := NewRenderHandler(render.New(cfg.SiteBaseURL))

	// a session surviving a restart resumes its countdown
	if err := authHandler.Restore(ctx); err != nil {
		logger.Warn("session restore", slog.Any("err", err))
	}

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	r.HandleFunc("/health", HealthHandler).Methods("GET")
	r.HandleFunc("/version", VersionHandler(version, buildTime)).Methods("GET")

	r.HandleFunc("/v1/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/v1/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	r.HandleFunc("/v1/enquiries", enquiriesHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/v1/applications", applicationsHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/v1/posts", postsHandler.List).Methods("GET")
	r.HandleFunc("/v1/posts/{id}", postsHandler.Get).Methods("GET")

	r.HandleFunc("/functions/send-enquiry-email", relayHandler.SendEnquiryEmail).Methods("POST", "OPTIONS")
	r.HandleFunc("/functions/send-career-application-email", relayHandler.SendApplicationEmail).Methods("POST", "OPTIONS")

	protected := r.PathPrefix("/v1").Subrouter()
	protected.Use(SessionAuthMiddleware(cfg.SessionSecret, repo))
	protected.HandleFunc("/auth/extend", authHandler.Extend).Methods("POST")
	protected.HandleFunc("/auth/session", authHandler.SessionInfo).Methods("GET")
	protected.HandleFunc("/admin/posts", postsHandler.Create).Methods("POST")
	protected.HandleFunc("/admin/posts/{id}", postsHandler.Update).Methods("PUT")
	protected.HandleFunc("/admin/posts/{id}", postsHandler.Delete).Methods("DELETE")

	// everything else is a site path served as an HTML shell
	r.PathPrefix("/").HandlerFunc(renderHandler.Serve).Methods("GET")

	cleanup := func() {
		clock.Stop()
		if err := resendClient.Close(); err != nil {
			logger.Error("close resend client", slog.Any("err", err))
		}
	}
	return r, cleanup, nil
}
