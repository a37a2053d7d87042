package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *entity.DoctorApplication) error
	FindByDoctorID(db *gorm.DB, doctorID string) (*entity.DoctorApplication, error)
	ExistsConflict(db *gorm.DB, doctorID, email, bmdcNumber string) (bool, error)
	ListPending(db *gorm.DB) ([]entity.DoctorApplication, error)
	UpdateStatus(db *gorm.DB, doctorID string, status entity.ApplicationStatus) (int64, error)
	CountPending(db *gorm.DB) (int64, error)
}
