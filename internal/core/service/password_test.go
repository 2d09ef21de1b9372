package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash equals cleartext")
	}
	if !h.Verify("secret1", hash) {
		t.Fatalf("verify failed for correct password")
	}
	if h.Verify("secret2", hash) {
		t.Fatalf("verify succeeded for wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected different hashes for same cleartext")
	}
	if !h.Verify("same-password", h1) || !h.Verify("same-password", h2) {
		t.Fatalf("both hashes should verify")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash should not verify")
	}
	if h.Verify("whatever", "") {
		t.Fatalf("empty hash should not verify")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}

	h = NewBcryptHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost for out-of-range, got %d", h.cost)
	}
}
