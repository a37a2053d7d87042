package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByID(db *gorm.DB, userID string) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	return db.Model(&entity.PatientProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (r *patientProfileRepository) ListActive(db *gorm.DB) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.user_id = patients.user_id").
		Where("users.is_active = ?", true).
		Order("patients.full_name").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Delete(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&entity.PatientProfile{}).Error
}

func (r *patientProfileRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.PatientProfile{}).Count(&count).Error
	return count, err
}

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, userID string) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	return db.Model(&entity.DoctorProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

func (r *doctorProfileRepository) ListActive(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.user_id = doctors.user_id").
		Where("users.is_active = ?", true).
		Order("doctors.full_name").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{}).Error
}

func (r *doctorProfileRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorProfile{}).Count(&count).Error
	return count, err
}
