package impl

import (
	"context"
	"log/slog"

	"credcheck/config"
	"credcheck/internal/domain/entity"
	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/repository"
	"credcheck/internal/domain/service"
	logs "credcheck/internal/infra/log"
	"credcheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialVerifier implements the CredentialVerifier interface.
// It holds no per-call state and is safe for concurrent use.
type credentialVerifier struct {
	store           repository.UserStore
	hasher          service.SecretHasher
	minSecretLength int
	equalizeTiming  bool
	placeholderHash string
	logger          *slog.Logger
}

// CredentialVerifierParams holds dependencies for the verifier, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	Store  repository.UserStore
	Hasher service.SecretHasher
	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialVerifier is the constructor for credentialVerifier. When timing
// equalization is on it hashes a random value once so that unknown identifiers
// still pay for one hash comparison.
func NewCredentialVerifier(params CredentialVerifierParams) (usecase.CredentialVerifier, error) {
	minSecretLength := config.DefaultMinSecretLength
	equalizeTiming := true
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MinSecretLength > 0 {
			minSecretLength = params.Config.Auth.MinSecretLength
		}
		equalizeTiming = !params.Config.Auth.DisableTimingEqualization
	}

	v := &credentialVerifier{
		store:           params.Store,
		hasher:          params.Hasher,
		minSecretLength: minSecretLength,
		equalizeTiming:  equalizeTiming,
		logger:          params.Logger,
	}

	if equalizeTiming {
		placeholder, err := params.Hasher.Hash(uuid.NewString())
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute placeholder hash")
		}
		v.placeholderHash = placeholder
	}

	return v, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the verifier's logger.
func (v *credentialVerifier) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, v.logger)
}

// Verify validates the credential shape, looks the account up and compares the secret.
func (v *credentialVerifier) Verify(ctx context.Context, identifier, secret string) (entity.VerificationOutcome, error) {
	cred, violations := validateCredential(identifier, secret, v.minSecretLength)
	if len(violations) > 0 {
		outcome := entity.RejectedMalformed(violations)
		v.log(ctx).Debug("Credential rejected before lookup", slog.String("outcome", outcome.String()))

		return outcome, nil
	}

	account, err := v.store.FindByIdentifier(ctx, cred.Identifier)
	if errors.Is(err, repository.ErrAccountNotFound) || (err == nil && account == nil) {
		if v.equalizeTiming {
			v.hasher.Check(cred.Secret, v.placeholderHash)
		}
		v.log(ctx).Debug("Unknown identifier", slog.String("identifier", cred.Identifier))

		return entity.Rejected(entity.RejectUnknownIdentifier), nil
	}
	if err != nil {
		if !errors.Is(err, domainerrors.ErrStoreUnavailable) {
			err = domainerrors.NewStoreUnavailableError(err, "account lookup failed")
		}

		return entity.VerificationOutcome{}, errors.Wrap(err, "failed to find account by identifier")
	}

	if !v.hasher.Check(cred.Secret, account.SecretHash) {
		v.log(ctx).Debug("Secret mismatch", slog.String("identifier", cred.Identifier))

		return entity.Rejected(entity.RejectSecretMismatch), nil
	}

	return entity.Admitted(account.ID), nil
}
