// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a persisted identity record. The verifier only ever reads it.
type Account struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Identifier string    // The login identifier, an email address.
	Name       string    // Display name; irrelevant to verification.
	SecretHash string    // One-way adaptive hash of the secret (bcrypt or argon2id encoded).
	CreatedAt  time.Time // Timestamp of when this account was created.
}

// Credential is a transient (identifier, secret) pair submitted for verification.
// It is never persisted.
type Credential struct {
	Identifier string
	Secret     string
}

// String never renders the secret.
func (c Credential) String() string {
	return "Credential{Identifier: " + c.Identifier + "}"
}

// GoString keeps %#v from printing the secret.
func (c Credential) GoString() string {
	return c.String()
}
