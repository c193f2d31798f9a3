package service

import (
	"context"

	"credcheck/internal/domain/entity"
)

// AttemptRecorder receives the audit record of every completed verification.
type AttemptRecorder interface {
	Record(ctx context.Context, attempt entity.VerificationAttempt) error
}
