package auth

import (
	"testing"
	"time"
)

const secret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseAccessToken(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	token, err := NewAccessToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(token, "other-secret"); err == nil {
		t.Fatalf("expected signature validation to fail")
	}
}

func TestAccessTokenExpiryRejected(t *testing.T) {
	token, err := NewAccessToken(42, secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(token, secret); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected mismatched password to fail")
	}
}
