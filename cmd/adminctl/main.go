package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	dbfs "github.com/mirsglobal/website/db"
	"github.com/mirsglobal/website/internal/config"
	"github.com/mirsglobal/website/internal/db"
	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/internal/repository/sqlite"
)

// seam for tests
var readPassword = term.ReadPassword

// adminctl creates or updates the admin account the site's login checks
// against. The password is prompted for without echo unless passed as a flag.
func main() {
	var (
		configPath = flag.String("config", "", "Path to config YAML file")
		username   = flag.String("username", "admin", "Admin username")
		email      = flag.String("email", "", "Admin email address")
		password   = flag.String("password", "", "Admin password (prompted when empty)")
	)
	flag.Parse()

	if err := run(*configPath, *username, *email, *password); err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username must not be empty")
	}

	if password == "" {
		fmt.Print("Password: ")
		raw, err := readPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	repo := sqlite.New(database)
	if err := repo.UpsertAdminUser(ctx, &models.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("store admin user: %w", err)
	}

	fmt.Printf("Admin user %q ready.\n", username)
	return nil
}
