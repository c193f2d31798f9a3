// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"credcheck/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches an identifier.
var ErrAccountNotFound = errors.New("account not found")

// UserStore is the read-only lookup the verifier depends on.
// Implementations own their connection lifecycle.
type UserStore interface {
	// FindByIdentifier returns the account for identifier, ErrAccountNotFound
	// when there is none, or an error matching domainerrors.ErrStoreUnavailable
	// when the store cannot answer.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)
}
