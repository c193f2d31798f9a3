// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"credcheck/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialVerifier decides whether a presented identifier and secret belong to a known account.
type CredentialVerifier interface {
	// Verify returns the outcome of checking secret against identifier's account.
	// A non-nil error is only ever a store failure; every rejection is an outcome.
	Verify(ctx context.Context, identifier, secret string) (entity.VerificationOutcome, error)
}

// --- Input DTOs ---

// AuthorizeInput defines the credentials presented by a caller.
type AuthorizeInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthorizeOutput identifies the account the credentials were admitted for.
type AuthorizeOutput struct {
	AccountID uuid.UUID
}

// Authorizer is the caller-facing contract: every rejection collapses into
// domainerrors.ErrInvalidCredentials so callers cannot tell the reasons apart.
type Authorizer interface {
	Authorize(ctx context.Context, input *AuthorizeInput) (*AuthorizeOutput, error)
}
