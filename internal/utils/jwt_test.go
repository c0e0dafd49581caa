package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("super-secret", 42, 0)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	id, err := ParseSessionToken("super-secret", tok)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if id != 42 {
		t.Fatalf("userId mismatch: got %d want 42", id)
	}
}

func TestSessionToken_NoTTLHasNoExpClaim(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("k", 1, 0)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		t.Fatalf("ParseUnverified error: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if _, has := claims["exp"]; has {
		t.Fatalf("token without TTL must not carry an exp claim")
	}
}

func TestSessionToken_TTLAddsExpiry(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("k", 1, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		t.Fatalf("ParseUnverified error: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if _, has := claims["exp"]; !has {
		t.Fatalf("token with TTL must carry an exp claim")
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("right-secret", 7, 0)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	if _, err := ParseSessionToken("wrong-secret", tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseSessionToken("k", "not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"userId": 3,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseSessionToken("k", tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseSessionToken_MissingOrBadSubject(t *testing.T) {
	t.Parallel()

	for name, claims := range map[string]jwt.MapClaims{
		"no userId":   {"iat": time.Now().Unix()},
		"zero userId": {"userId": 0},
		"junk userId": {"userId": "abc"},
	} {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		if err != nil {
			t.Fatalf("%s: sign error: %v", name, err)
		}
		if _, err := ParseSessionToken("k", tok); err != ErrInvalidToken {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
