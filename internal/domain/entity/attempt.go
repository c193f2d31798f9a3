package entity

import "time"

// VerificationAttempt is the audit record of one completed verification.
// It carries the outcome and identifier only, never credential material.
type VerificationAttempt struct {
	Identifier string
	Outcome    VerificationOutcome
	At         time.Time
}
