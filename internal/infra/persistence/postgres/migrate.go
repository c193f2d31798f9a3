package postgres

import (
	"context"

	"credcheck/internal/domain/entity"
	"credcheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Migrate creates or updates the accounts table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.AccountModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate accounts table")
	}

	return nil
}

// SeedAccount inserts account, or replaces the name and secret hash of the
// account already holding its identifier. account.ID is set to the stored row's ID.
// Its statements bind the secret hash, so they bypass the SQL logger.
func SeedAccount(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	db = db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	accountM := &model.AccountModel{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Identifier,
		Password: account.SecretHash,
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password"}),
	}).Create(accountM).Error
	if err != nil {
		return errors.Wrap(err, "failed to seed account")
	}

	// On conflict the returned ID is not the stored one; read it back.
	var stored model.AccountModel
	if err := db.WithContext(ctx).Select("id", "created_at").Where("email = ?", account.Identifier).Take(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to read seeded account")
	}
	account.ID = stored.ID
	account.CreatedAt = stored.CreatedAt

	return nil
}
