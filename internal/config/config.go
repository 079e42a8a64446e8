package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	DatabasePath  string        `yaml:"database_path"`
	APITimeout    time.Duration `yaml:"timeout"`
	SessionSecret string        `yaml:"session_secret"`
	SiteBaseURL   string        `yaml:"site_base_url"`
	Resend        ResendConfig  `yaml:"resend"`
}

type ResendConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	From    string        `yaml:"from"`
	To      []string      `yaml:"to"`
	Timeout time.Duration `yaml:"timeout"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second

	cfg := &Config{
		Addr:          getEnv("SITE_ADDR", ":8080"),
		DatabasePath:  getEnv("SITE_DATABASE_PATH", "site.db"),
		APITimeout:    apiTimeout,
		SessionSecret: getEnv("SITE_SESSION_SECRET", "supersecretkey"),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "https://mirsglobalsolutions.com"),
		Resend: ResendConfig{
			BaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
			APIKey:  getEnv("RESEND_API_KEY", ""),
			From:    getEnv("SITE_MAIL_FROM", "MIRS Global Solutions <support@mirsglobalsolutions.com>"),
			To:      splitList(getEnv("SITE_MAIL_TO", "enquiries@mirsglobalsolutions.com")),
			Timeout: 10 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
