package service

import (
	"errors"
	"testing"
	"time"

	"github.com/xezo360hye/DIP392-1337/internal/config"
)

func testAuthService(expiry time.Duration) *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: 4, // bcrypt.MinCost, keeps tests fast
	}
	return NewAuthService(cfg, nil)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testAuthService(time.Hour)

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", claims.UserID)
	}
	if claims.ID == "" {
		t.Error("expected a JTI on the token")
	}
}

func TestTokenJTIUnique(t *testing.T) {
	svc := testAuthService(time.Hour)

	t1, _ := svc.GenerateToken(1)
	t2, _ := svc.GenerateToken(1)

	c1, err := svc.ValidateToken(t1)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	c2, err := svc.ValidateToken(t2)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if c1.ID == c2.ID {
		t.Error("two tokens share a JTI; revoking one would revoke both")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testAuthService(-time.Minute)

	token, err := svc.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	svc := testAuthService(time.Hour)
	token, err := svc.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := testAuthService(time.Hour)
	other.cfg.JWTSecret = "different-secret"

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := testAuthService(time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateToken(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	svc := testAuthService(time.Hour)

	hash, err := svc.HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("password stored in plaintext")
	}

	if err := svc.CheckPassword(hash, "admin123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := svc.CheckPassword(hash, "admin124"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
