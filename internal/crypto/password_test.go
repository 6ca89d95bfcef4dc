package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "secret1" || hash == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext, got %q", hash)
	}

	if !h.Verify("secret1", hash) {
		t.Error("expected matching password to verify")
	}
	if h.Verify("secret2", hash) {
		t.Error("expected wrong password to be rejected")
	}
}

func TestPasswordHasher_SaltedOutput(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("expected two hashes of the same password to differ")
	}
	if !h.Verify("secret1", h1) || !h.Verify("secret1", h2) {
		t.Fatal("expected both hashes to verify")
	}
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, bad := range []string{"", "not-a-hash", "$2a$04$short"} {
		if h.Verify("secret1", bad) {
			t.Errorf("expected malformed hash %q to be rejected", bad)
		}
	}
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost + 1)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != bcrypt.MinCost+1 {
		t.Errorf("cost = %d, want %d", cost, bcrypt.MinCost+1)
	}
}

func TestPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(100).(*bcryptHasher)

	if h.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want default %d", h.cost, bcrypt.DefaultCost)
	}
}

func TestPasswordHasher_TooLongPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("a", 100)); err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}
