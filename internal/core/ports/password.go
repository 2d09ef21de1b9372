package ports

// PasswordHasher is a one-way, salted hashing scheme. Hash salts per call,
// so hashing the same cleartext twice yields different strings that both
// verify. Verify returns false for a malformed stored hash, never an error.
type PasswordHasher interface {
	Hash(cleartext string) (string, error)
	Verify(cleartext, hash string) bool
}
