package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codesumanr/portfolio-api/internal/auth"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1, err := auth.HashPassword("hunter2", "pepper")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := auth.HashPassword("hunter2", "pepper")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("same (password, salt) produced different hashes: %q vs %q", h1, h2)
	}
	if h1 == "" {
		t.Fatalf("empty hash")
	}
}

func TestHashPassword_DistinctInputs(t *testing.T) {
	base, err := auth.HashPassword("hunter2", "pepper")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	other, err := auth.HashPassword("hunter3", "pepper")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if other == base {
		t.Fatalf("different passwords produced identical hashes")
	}

	salted, err := auth.HashPassword("hunter2", "salt2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if salted == base {
		t.Fatalf("different salts produced identical hashes")
	}
}

func TestNewToken_Claims(t *testing.T) {
	secret := "testsecret"
	tok, err := auth.NewToken("suman", secret, 2*time.Hour)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	parsed, err := jwt.Parse(tok, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claims["user"] != "suman" {
		t.Fatalf("wrong user claim: %v", claims["user"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("wrong role claim: %v", claims["role"])
	}
	expF, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	want := time.Now().Add(2 * time.Hour).Unix()
	if got := int64(expF); got < want-5 || got > want+5 {
		t.Fatalf("exp claim off: got %d want ~%d", got, want)
	}
}

func TestNewToken_ExpiredRejected(t *testing.T) {
	secret := "testsecret"
	tok, err := auth.NewToken("suman", secret, -time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	if _, err := jwt.Parse(tok, func(token *jwt.Token) (any, error) { return []byte(secret), nil }); err == nil {
		t.Fatalf("expected parse of expired token to fail")
	}
}

func TestNewToken_WrongSecretRejected(t *testing.T) {
	tok, err := auth.NewToken("suman", "rightsecret", time.Hour)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	if _, err := jwt.Parse(tok, func(token *jwt.Token) (any, error) { return []byte("wrongsecret"), nil }); err == nil {
		t.Fatalf("expected parse with wrong secret to fail")
	}
}
