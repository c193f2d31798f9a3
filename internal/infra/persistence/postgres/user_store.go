// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"credcheck/internal/domain/entity"
	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/repository"
	"credcheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userStore implements repository.UserStore on top of GORM.
type userStore struct {
	db *gorm.DB
}

// NewUserStore is the constructor for userStore. The caller owns db's pool.
func NewUserStore(db *gorm.DB) repository.UserStore {
	return &userStore{db: db}
}

// FindByIdentifier reads one account by email. Any failure other than a miss,
// including cancellation and deadline expiry, is reported as store unavailability.
func (s *userStore) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := s.db.WithContext(ctx).
		Where("email = ?", identifier).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find account by identifier")
	}

	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:         data.ID,
		Identifier: data.Email,
		Name:       data.Name,
		SecretHash: data.Password,
		CreatedAt:  data.CreatedAt,
	}
}
