package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'users' table the login flow reads from.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password  string    `gorm:"type:text;not null"` // bcrypt or argon2id encoded hash
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when the caller did not.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
