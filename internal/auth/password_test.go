package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !hasher.Verify("secret1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if hasher.Verify("wrong", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", hasher.cost)
	}
}
