package repository

import (
	"errors"
	"time"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, userID string) (*entity.User, error) {
	var user entity.User
	err := db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByIDOrEmail(db *gorm.DB, userID, email string) (bool, error) {
	var count int64
	err := db.Model(&entity.User{}).
		Where("user_id = ? OR email = ?", userID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error {
	return db.Model(&entity.User{}).
		Where("user_id = ?", userID).
		Update("last_login", at).Error
}

func (r *userRepository) UpdatePassword(db *gorm.DB, userID, passwordHash string) error {
	return db.Model(&entity.User{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) Deactivate(db *gorm.DB, userID string) error {
	return db.Model(&entity.User{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
}
