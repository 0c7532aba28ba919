package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("OHIO_ORDER_API_URL", "")
	t.Setenv("SESSION_EXPIRY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	cfg := FromEnv()
	if cfg.OrderAPIURL != "http://localhost:8080" {
		t.Errorf("OrderAPIURL = %q", cfg.OrderAPIURL)
	}
	if cfg.SessionExpiry != 12*time.Hour {
		t.Errorf("SessionExpiry = %s", cfg.SessionExpiry)
	}
	if cfg.SessionCookie != "session_id" {
		t.Errorf("SessionCookie = %q", cfg.SessionCookie)
	}
	if cfg.DSN() != "" {
		t.Errorf("expected empty DSN without database settings, got %q", cfg.DSN())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OHIO_ORDER_TIMEOUT", "3s")
	t.Setenv("DRAFT_TTL", "not-a-duration")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "ohio")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("DB_SSLMODE", "disable")

	cfg := FromEnv()
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.DraftTTL != 6*time.Hour {
		t.Errorf("invalid DRAFT_TTL should fall back to default, got %s", cfg.DraftTTL)
	}
	want := "postgres://ohio:pw@db:5433/orders?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	t.Setenv("DATABASE_URL", "postgres://x@y/z")
	if got := FromEnv().DSN(); got != "postgres://x@y/z" {
		t.Errorf("DATABASE_URL should win, got %q", got)
	}
}
