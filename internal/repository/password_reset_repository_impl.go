package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type passwordResetRepository struct{}

func NewPasswordResetRepository() domainRepo.PasswordResetRepository {
	return &passwordResetRepository{}
}

// Upsert replaces any previous code for the user so only the latest OTP is
// ever valid.
func (r *passwordResetRepository) Upsert(db *gorm.DB, reset *entity.PasswordReset) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp_code", "expires_at"}),
	}).Create(reset).Error
}

func (r *passwordResetRepository) Find(db *gorm.DB, userID, otpCode string) (*entity.PasswordReset, error) {
	var reset entity.PasswordReset
	err := db.Where("user_id = ? AND otp_code = ?", userID, otpCode).
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) Delete(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&entity.PasswordReset{}).Error
}
