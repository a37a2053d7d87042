package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type applicationRepository struct{}

func NewApplicationRepository() domainRepo.ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *entity.DoctorApplication) error {
	return db.Create(app).Error
}

func (r *applicationRepository) FindByDoctorID(db *gorm.DB, doctorID string) (*entity.DoctorApplication, error) {
	var app entity.DoctorApplication
	err := db.Where("doctor_id = ?", doctorID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ExistsConflict(db *gorm.DB, doctorID, email, bmdcNumber string) (bool, error) {
	var count int64
	err := db.Model(&entity.DoctorApplication{}).
		Where("doctor_id = ? OR email = ? OR bmdc_number = ?", doctorID, email, bmdcNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) ListPending(db *gorm.DB) ([]entity.DoctorApplication, error) {
	var apps []entity.DoctorApplication
	err := db.Where("status = ?", entity.ApplicationStatusPending).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, doctorID string, status entity.ApplicationStatus) (int64, error) {
	result := db.Model(&entity.DoctorApplication{}).
		Where("doctor_id = ?", doctorID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *applicationRepository) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorApplication{}).
		Where("status = ?", entity.ApplicationStatusPending).
		Count(&count).Error
	return count, err
}
