package repository

import (
	"time"

	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, userID string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	ExistsByIDOrEmail(db *gorm.DB, userID, email string) (bool, error)
	UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error
	UpdatePassword(db *gorm.DB, userID, passwordHash string) error
	Deactivate(db *gorm.DB, userID string) error
}
