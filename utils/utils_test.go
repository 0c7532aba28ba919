package utils

import (
	"testing"
	"time"

	"ohio-order/models"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{8000, "Rp 8.000"},
		{150000, "Rp 150.000"},
		{1234567, "Rp 1.234.567"},
		{99999.6, "Rp 100.000"},
		{-25000, "-Rp 25.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	sess := models.Session{ID: "sess-1", TableID: "meja-7", NomorMeja: "7"}
	token, err := GenerateSessionToken(sess, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	got, err := ValidateSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if got != sess {
		t.Errorf("session = %+v, want %+v", got, sess)
	}
}

func TestSessionToken_Rejects(t *testing.T) {
	sess := models.Session{ID: "sess-1"}

	token, _ := GenerateSessionToken(sess, "secret", time.Hour)
	if _, err := ValidateSessionToken(token, "other-secret"); err == nil {
		t.Error("token signed with another secret should be rejected")
	}

	expired, _ := GenerateSessionToken(sess, "secret", -time.Minute)
	if _, err := ValidateSessionToken(expired, "secret"); err == nil {
		t.Error("expired token should be rejected")
	}

	if _, err := ValidateSessionToken("not-a-token", "secret"); err == nil {
		t.Error("garbage should be rejected")
	}
}
