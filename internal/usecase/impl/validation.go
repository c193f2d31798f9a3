// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strconv"

	"credcheck/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

const (
	fieldIdentifier = "identifier"
	fieldSecret     = "secret"

	// maxIdentifierLength is the longest address RFC 5321 allows on the wire.
	maxIdentifierLength = 254
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateCredential checks the shape of a presented credential. The secret
// length is counted in Unicode code points. Violations name the field and the
// failed rule only, never the offending value.
func validateCredential(identifier, secret string, minSecretLength int) (entity.Credential, []entity.FieldViolation) {
	var violations []entity.FieldViolation

	identifierRules := "required,max=" + strconv.Itoa(maxIdentifierLength) + ",email"
	violations = append(violations, fieldViolations(fieldIdentifier, validate.Var(identifier, identifierRules))...)

	secretRules := "required,min=" + strconv.Itoa(minSecretLength)
	violations = append(violations, fieldViolations(fieldSecret, validate.Var(secret, secretRules))...)

	if len(violations) > 0 {
		return entity.Credential{}, violations
	}

	return entity.Credential{Identifier: identifier, Secret: secret}, nil
}

func fieldViolations(field string, err error) []entity.FieldViolation {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice unwrapped
	if !ok {
		return []entity.FieldViolation{{Field: field, Rule: "invalid"}}
	}

	violations := make([]entity.FieldViolation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, entity.FieldViolation{Field: field, Rule: fe.Tag()})
	}

	return violations
}
