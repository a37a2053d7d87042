package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PasswordResetRepository interface {
	Upsert(db *gorm.DB, reset *entity.PasswordReset) error
	Find(db *gorm.DB, userID, otpCode string) (*entity.PasswordReset, error)
	Delete(db *gorm.DB, userID string) error
}
