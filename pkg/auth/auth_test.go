// No t.Parallel() — the JWT secret lives in a process-global env var.
package auth

import (
	"strings"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sannu-123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "sannu-123" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "sannu-123") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestVerifyPassword_InvalidHashIsFalse(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Error("invalid hash must verify as false, not panic or succeed")
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv(envJWTSecret, "test-secret")
	t.Setenv(envJWTExpiry, "1")

	token, err := GenerateJWT("user-1", "firdausi")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Username != "firdausi" {
		t.Errorf("Username = %q, want firdausi", claims.Username)
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Error("token already expired")
	}
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv(envJWTSecret, "test-secret")

	if _, err := ParseJWT(""); err == nil {
		t.Error("empty token must fail")
	}
	if _, err := ParseJWT("garbage.token.here"); err == nil {
		t.Error("malformed token must fail")
	}

	token, err := GenerateJWT("user-1", "firdausi")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseJWT(tampered); err == nil {
		t.Error("tampered signature must fail")
	}
	if !strings.Contains(token, ".") {
		t.Fatal("token is not a JWT")
	}
}

func TestParseJWTExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"":    24 * time.Hour,
		"bad": 24 * time.Hour,
		"2":   2 * time.Hour,
		"48":  48 * time.Hour,
	}
	for in, want := range cases {
		if got := parseJWTExpiry(in); got != want {
			t.Errorf("parseJWTExpiry(%q) = %v, want %v", in, got, want)
		}
	}
}
