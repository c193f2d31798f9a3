package impl

import (
	"context"
	"log/slog"
	"time"

	"credcheck/config"
	"credcheck/internal/domain/entity"
	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/service"
	logs "credcheck/internal/infra/log"
	"credcheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorizer implements the Authorizer interface on top of a CredentialVerifier.
type authorizer struct {
	verifier      usecase.CredentialVerifier
	recorder      service.AttemptRecorder
	lookupTimeout time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// AuthorizerParams holds dependencies for the authorizer, injected by Fx.
type AuthorizerParams struct {
	fx.In

	Verifier usecase.CredentialVerifier
	Recorder service.AttemptRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthorizer is the constructor for authorizer.
func NewAuthorizer(params AuthorizerParams) usecase.Authorizer {
	lookupTimeout := config.DefaultLookupTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.LookupTimeout > 0 {
		lookupTimeout = params.Config.Auth.LookupTimeout
	}

	return &authorizer{
		verifier:      params.Verifier,
		recorder:      params.Recorder,
		lookupTimeout: lookupTimeout,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (a *authorizer) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, a.logger)
}

// Authorize admits the caller or fails with ErrInvalidCredentials. Store
// failures are returned as-is so callers can retry instead of reporting bad credentials.
func (a *authorizer) Authorize(ctx context.Context, input *usecase.AuthorizeInput) (*usecase.AuthorizeOutput, error) {
	if input == nil {
		a.log(ctx).Warn("Invalid credentials", slog.String("reason", string(entity.RejectMalformedInput)))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authorization failed")
	}

	verifyCtx, cancel := context.WithTimeout(ctx, a.lookupTimeout)
	defer cancel()

	outcome, err := a.verifier.Verify(verifyCtx, input.Email, input.Password)
	if err != nil {
		a.log(ctx).Error("Credential verification failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "authorization failed")
	}

	attempt := entity.VerificationAttempt{Identifier: input.Email, Outcome: outcome, At: a.now()}
	if err := a.recorder.Record(ctx, attempt); err != nil {
		a.log(ctx).Warn("Failed to record verification attempt", slog.String("email", input.Email), slog.Any("error", err))
	}

	if !outcome.Admitted {
		a.log(ctx).Warn("Invalid credentials",
			slog.String("email", input.Email),
			slog.String("reason", string(outcome.Reason)),
			slog.String("outcome", outcome.String()),
		)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authorization failed")
	}

	a.log(ctx).Debug("Credentials admitted", slog.Any("accountID", outcome.AccountID))

	return &usecase.AuthorizeOutput{AccountID: outcome.AccountID}, nil
}
