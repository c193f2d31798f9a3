// Package app assembles the credential verification graph for fx hosts.
package app

import (
	"credcheck/config"
	"credcheck/internal/infra/audit"
	"credcheck/internal/infra/auth"
	logs "credcheck/internal/infra/log"
	"credcheck/internal/infra/persistence/postgres"
	"credcheck/internal/usecase/impl"

	"go.uber.org/fx"
)

// Module provides usecase.CredentialVerifier and usecase.Authorizer together
// with everything they depend on.
var Module = fx.Options(
	injectInfra(),
	injectRepo(),
	injectService(),
	injectUsecase(),
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
		audit.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSecretHasher,
			audit.NewAttemptRecorder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialVerifier,
			impl.NewAuthorizer,
		),
	)
}
