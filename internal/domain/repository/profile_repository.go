package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByID(db *gorm.DB, userID string) (*entity.PatientProfile, error)
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	ListActive(db *gorm.DB) ([]entity.PatientProfile, error)
	Delete(db *gorm.DB, userID string) error
	Count(db *gorm.DB) (int64, error)
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, userID string) (*entity.DoctorProfile, error)
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	ListActive(db *gorm.DB) ([]entity.DoctorProfile, error)
	Delete(db *gorm.DB, userID string) error
	Count(db *gorm.DB) (int64, error)
}
