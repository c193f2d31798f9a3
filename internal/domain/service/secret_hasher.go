// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher abstracts the adaptive one-way hash used for account secrets.
type SecretHasher interface {
	// Hash generates a salted, encoded hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check reports whether secret matches hash. Malformed hashes never match.
	Check(secret, hash string) bool
}
