package service

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements ports.PasswordHasher on bcrypt. The cost is the
// tunable work factor; zero or out-of-range values fall back to the bcrypt
// default.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(cleartext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cleartext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether cleartext reproduces hash. Malformed hashes verify
// false rather than erroring; the digest comparison inside bcrypt is
// constant-time.
func (h *BcryptHasher) Verify(cleartext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(cleartext)) == nil
}
