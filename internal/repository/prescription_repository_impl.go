package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) CreateTest(db *gorm.DB, test *entity.PrescriptionTest) error {
	return db.Create(test).Error
}

func (r *prescriptionRepository) CreateMedicineLine(db *gorm.DB, line *entity.PrescriptionMedicine) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uint) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Doctor").Preload("Patient").
		Preload("Tests").Preload("Medicines.Medicine").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByIDForPatient(db *gorm.DB, id uint, patientID string) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Doctor").Preload("Patient").
		Preload("Tests").Preload("Medicines.Medicine").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(db *gorm.DB, patientID string) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Doctor").Preload("Medicines.Medicine").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) ListRecentByPatient(db *gorm.DB, patientID string, limit int) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Doctor").Preload("Medicines.Medicine").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindLineByID(db *gorm.DB, lineID uint) (*entity.PrescriptionMedicine, error) {
	var line entity.PrescriptionMedicine
	err := db.Preload("Medicine").Where("id = ?", lineID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// DetachMedicine nulls the inventory reference on every prescription line
// pointing at the given medicine. Detached lines read as custom medicines.
func (r *prescriptionRepository) DetachMedicine(db *gorm.DB, medicineID uint) error {
	return db.Model(&entity.PrescriptionMedicine{}).
		Where("medicine_id = ?", medicineID).
		Update("medicine_id", nil).Error
}

func (r *prescriptionRepository) ListLinesByPrescription(db *gorm.DB, prescriptionID uint) ([]entity.PrescriptionMedicine, error) {
	var lines []entity.PrescriptionMedicine
	err := db.Preload("Medicine").
		Where("prescription_id = ?", prescriptionID).
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *prescriptionRepository) ListRecentLinesByPatient(db *gorm.DB, patientID string, limit int) ([]entity.PrescriptionMedicine, error) {
	var lines []entity.PrescriptionMedicine
	err := db.Preload("Medicine").
		Joins("JOIN prescriptions ON prescriptions.id = prescription_medicines.prescription_id").
		Where("prescriptions.patient_id = ?", patientID).
		Order("prescriptions.created_at DESC").
		Limit(limit).
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *prescriptionRepository) ListTestsByPrescription(db *gorm.DB, prescriptionID uint) ([]entity.PrescriptionTest, error) {
	var tests []entity.PrescriptionTest
	err := db.Where("prescription_id = ?", prescriptionID).Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}
