package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RejectReason is the internal reason a verification was rejected.
// Callers should present every reason identically to end users.
type RejectReason string

const (
	RejectMalformedInput    RejectReason = "malformed_input"
	RejectUnknownIdentifier RejectReason = "unknown_identifier"
	RejectSecretMismatch    RejectReason = "secret_mismatch"
)

// FieldViolation names an input field and the rule it failed. It never holds the value.
type FieldViolation struct {
	Field string
	Rule  string
}

func (v FieldViolation) String() string {
	return v.Field + ":" + v.Rule
}

// VerificationOutcome is the admit/reject result of a verification attempt.
// When Admitted is true only AccountID is meaningful; otherwise Reason is set.
type VerificationOutcome struct {
	Admitted   bool
	AccountID  uuid.UUID
	Reason     RejectReason
	Violations []FieldViolation // only for RejectMalformedInput
}

// Admitted builds a successful outcome for the given account.
func Admitted(accountID uuid.UUID) VerificationOutcome {
	return VerificationOutcome{Admitted: true, AccountID: accountID}
}

// Rejected builds a rejected outcome.
func Rejected(reason RejectReason) VerificationOutcome {
	return VerificationOutcome{Reason: reason}
}

// RejectedMalformed builds a malformed_input rejection carrying the violated rules.
func RejectedMalformed(violations []FieldViolation) VerificationOutcome {
	return VerificationOutcome{Reason: RejectMalformedInput, Violations: violations}
}

func (o VerificationOutcome) String() string {
	if o.Admitted {
		return fmt.Sprintf("Admitted(%s)", o.AccountID)
	}
	if len(o.Violations) == 0 {
		return fmt.Sprintf("Rejected(%s)", o.Reason)
	}

	rules := make([]string, 0, len(o.Violations))
	for _, v := range o.Violations {
		rules = append(rules, v.String())
	}

	return fmt.Sprintf("Rejected(%s: %s)", o.Reason, strings.Join(rules, ", "))
}
