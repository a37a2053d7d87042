package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type refillCartRepository struct{}

func NewRefillCartRepository() domainRepo.RefillCartRepository {
	return &refillCartRepository{}
}

func (r *refillCartRepository) Create(db *gorm.DB, item *entity.CartItem) error {
	return db.Create(item).Error
}

func (r *refillCartRepository) FindByPatientAndLine(db *gorm.DB, patientID string, lineID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := db.Where("patient_id = ? AND prescription_medicine_id = ?", patientID, lineID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *refillCartRepository) ListByPatient(db *gorm.DB, patientID string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := db.Preload("PrescriptionMedicine.Medicine").
		Where("patient_id = ?", patientID).
		Order("added_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *refillCartRepository) UpdateQuantity(db *gorm.DB, cartID uint, patientID string, quantity int) (int64, error) {
	result := db.Model(&entity.CartItem{}).
		Where("id = ? AND patient_id = ?", cartID, patientID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

func (r *refillCartRepository) Delete(db *gorm.DB, cartID uint, patientID string) error {
	return db.Where("id = ? AND patient_id = ?", cartID, patientID).
		Delete(&entity.CartItem{}).Error
}

func (r *refillCartRepository) DeleteByPatient(db *gorm.DB, patientID string) error {
	return db.Where("patient_id = ?", patientID).Delete(&entity.CartItem{}).Error
}
