package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wayfinder/internal/domain"
)

const (
	testSigningKey    = "unit-test-signing-secret"
	testEncryptionKey = "unit-test-encryption-secret"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSigningKey, testEncryptionKey, "wayfinder-api", "wayfinder-client", ttl)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return svc
}

func TestNewTokenService_RequiresSecrets(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenService("", testEncryptionKey, "iss", "aud", time.Hour); err == nil {
		t.Fatal("expected error for blank signing key")
	}
	if _, err := NewTokenService(testSigningKey, "  ", "iss", "aud", time.Hour); err == nil {
		t.Fatal("expected error for blank encryption key")
	}
}

func TestIssueValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if identity.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", identity.UserID)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want a@x.com", identity.Email)
	}
}

func TestIssue_CompactJWEShape(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if got := len(strings.Split(token, ".")); got != 5 {
		t.Fatalf("expected 5 dot-separated segments, got %d", got)
	}
}

func TestIssue_TokensAreUnique(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	t1, err := svc.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	t2, err := svc.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if t1 == t2 {
		t.Fatal("expected distinct tokens for repeated issuance")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	// Expired past the 5 minute clock skew tolerance.
	svc := newTestTokenService(t, -6*time.Minute)

	token, err := svc.Issue(7, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_ExpiredWithinSkewAccepted(t *testing.T) {
	t.Parallel()

	// Nominally expired, but inside the skew tolerance.
	svc := newTestTokenService(t, -2*time.Minute)

	token, err := svc.Issue(7, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("expected token within skew to validate, got %v", err)
	}
}

func TestValidate_TamperedCiphertextAndTag(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(7, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Segment 3 is the ciphertext, segment 4 the authentication tag.
	for _, segment := range []int{3, 4} {
		parts := strings.Split(token, ".")
		parts[segment] = flipChar(parts[segment])
		if _, err := svc.Validate(strings.Join(parts, ".")); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for tampered segment %d, got %v", segment, err)
		}
	}
}

func TestValidate_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	issue := func(issuer, audience string) string {
		svc, err := NewTokenService(testSigningKey, testEncryptionKey, issuer, audience, time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService error: %v", err)
		}
		token, err := svc.Issue(7, "a@x.com")
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}
		return token
	}

	validator := newTestTokenService(t, time.Hour)

	if _, err := validator.Validate(issue("someone-else", "wayfinder-client")); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
	if _, err := validator.Validate(issue("wayfinder-api", "other-client")); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong audience, got %v", err)
	}
}

func TestValidate_WrongKeys(t *testing.T) {
	t.Parallel()

	other, err := NewTokenService("different-signing", "different-encryption", "wayfinder-api", "wayfinder-client", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	token, err := other.Issue(7, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	svc := newTestTokenService(t, time.Hour)
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign keys, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "a.b.c.d.e"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestPadKey(t *testing.T) {
	t.Parallel()

	if got := padKey("short", 8); string(got) != "short000" {
		t.Fatalf("padKey short: got %q", got)
	}
	if got := padKey("0123456789", 8); string(got) != "01234567" {
		t.Fatalf("padKey long: got %q", got)
	}
}

func flipChar(s string) string {
	b := []byte(s)
	i := len(b) / 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
