package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	CreateTest(db *gorm.DB, test *entity.PrescriptionTest) error
	CreateMedicineLine(db *gorm.DB, line *entity.PrescriptionMedicine) error
	FindByID(db *gorm.DB, id uint) (*entity.Prescription, error)
	FindByIDForPatient(db *gorm.DB, id uint, patientID string) (*entity.Prescription, error)
	ListByPatient(db *gorm.DB, patientID string) ([]entity.Prescription, error)
	ListRecentByPatient(db *gorm.DB, patientID string, limit int) ([]entity.Prescription, error)
	FindLineByID(db *gorm.DB, lineID uint) (*entity.PrescriptionMedicine, error)
	DetachMedicine(db *gorm.DB, medicineID uint) error
	ListLinesByPrescription(db *gorm.DB, prescriptionID uint) ([]entity.PrescriptionMedicine, error)
	ListRecentLinesByPatient(db *gorm.DB, patientID string, limit int) ([]entity.PrescriptionMedicine, error)
	ListTestsByPrescription(db *gorm.DB, prescriptionID uint) ([]entity.PrescriptionTest, error)
}
