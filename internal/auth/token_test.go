package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	raw, err := issuer.Issue("operator")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "operator" {
		t.Fatalf("expected username operator, got %q", claims.Username)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	parser := NewParser("secret-b")

	raw, err := issuer.Issue("operator")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	parser := NewParser("test-secret")

	raw, err := issuer.Issue("operator")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for an expired token, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	parser := NewParser("test-secret")

	if _, err := parser.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
