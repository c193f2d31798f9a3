package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"credcheck/config"
	"credcheck/internal/domain/entity"
	"credcheck/internal/domain/service"
	"credcheck/internal/infra/auth"
	logs "credcheck/internal/infra/log"
	"credcheck/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// seedSecretEnv holds the secret for -seed-identifier so it never shows up in argv.
const seedSecretEnv = "CREDCHECK_SEED_SECRET"

type seedFlags struct {
	identifier string
	name       string
}

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Hasher service.SecretHasher
	Logger *slog.Logger
}

func main() {
	var seed seedFlags
	flag.StringVar(&seed.identifier, "seed-identifier", "", "Email of an account to create or update after migrating (secret read from "+seedSecretEnv+")")
	flag.StringVar(&seed.name, "seed-name", "", "Display name for the seeded account")
	flag.Parse()

	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			auth.NewSecretHasher,
		),
		fx.Supply(seed),
		fx.Invoke(runMigrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build migrate app", slog.Any("error", err))
		os.Exit(1)
	}

	app.Run()
}

func runMigrate(params migrateParams, seed seedFlags) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				exitCode := 0
				if err := migrate(context.Background(), params, seed); err != nil {
					params.Logger.Error("Migration failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func migrate(ctx context.Context, params migrateParams, seed seedFlags) error {
	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}
	params.Logger.Info("Accounts table migrated")

	if seed.identifier == "" {
		return nil
	}

	secret := os.Getenv(seedSecretEnv)
	if secret == "" {
		return errors.Errorf("%s must be set to seed %s", seedSecretEnv, seed.identifier)
	}

	hash, err := params.Hasher.Hash(secret)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed secret")
	}

	account := &entity.Account{Identifier: seed.identifier, Name: seed.name, SecretHash: hash}
	if err := postgres.SeedAccount(ctx, params.DB, account); err != nil {
		return err
	}
	params.Logger.Info("Account seeded", slog.String("identifier", account.Identifier), slog.Any("accountID", account.ID))

	return nil
}
