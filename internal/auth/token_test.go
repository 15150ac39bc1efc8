package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/storelabs/store-api/internal/core/domain"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	identity := domain.Identity{UserID: "u1", Username: "alice", IsAdmin: true}
	token, err := issuer.Issue(identity)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" || !claims.IsAdmin {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if got := claims.Identity(); got != identity {
		t.Fatalf("identity mismatch: %+v", got)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	issuer := NewIssuer("secret", ttl)
	issuer.now = func() time.Time { return t0 }

	token, err := issuer.Issue(domain.Identity{UserID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := NewVerifier("secret")

	verifier.now = func() time.Time { return t0.Add(ttl - time.Second) }
	if _, err := verifier.Verify(token); err != nil {
		t.Fatalf("expected token valid one second before expiry, got %v", err)
	}

	verifier.now = func() time.Time { return t0.Add(ttl + time.Second) }
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken one second after expiry, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	token, err := issuer.Issue(domain.Identity{UserID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	// Flip each byte of the signature segment in turn. The replacement always
	// differs in the high-order bits of the sextet, so even the final
	// character (whose trailing bits are base64 padding) decodes differently.
	sig := []byte(parts[2])
	for i := range sig {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		switch tampered[i] {
		case 'Q', 'R', 'S', 'T':
			tampered[i] = 'A'
		default:
			tampered[i] = 'Q'
		}
		forged := parts[0] + "." + parts[1] + "." + string(tampered)
		if _, err := verifier.Verify(forged); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("byte %d: expected ErrInvalidToken, got %v", i, err)
		}
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	token, err := issuer.Issue(domain.Identity{UserID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := NewVerifier("other-secret")
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	verifier := NewVerifier("secret")
	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	issuer := NewIssuer("secret", 0)
	if issuer.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, issuer.ttl)
	}
}
