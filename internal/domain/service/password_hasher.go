// Package service defines interfaces for core, stateless domain logic and the
// adapters (hashing, tokens, time) that policies and use cases depend on.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash.
	Compare(password, hash string) bool
}
