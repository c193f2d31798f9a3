// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/service"

	"github.com/pkg/errors"
)

// maxBcryptSecretBytes is the longest input bcrypt reads; longer secrets are never hashed.
const maxBcryptSecretBytes = 72

// bcryptHasher is a SecretHasher backed by bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher using bcrypt.DefaultCost.
func NewBcryptHasher() service.SecretHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost returns a bcrypt hasher with the given cost.
// Costs below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.SecretHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash; bcrypt embeds the salt and cost in the output.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash. Secrets past bcrypt's
// input limit never match, since only their first 72 bytes would be compared.
func (h *bcryptHasher) Check(secret, hash string) bool {
	if len(secret) > maxBcryptSecretBytes {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
