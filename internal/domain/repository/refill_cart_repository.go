package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type RefillCartRepository interface {
	Create(db *gorm.DB, item *entity.CartItem) error
	FindByPatientAndLine(db *gorm.DB, patientID string, lineID uint) (*entity.CartItem, error)
	ListByPatient(db *gorm.DB, patientID string) ([]entity.CartItem, error)
	UpdateQuantity(db *gorm.DB, cartID uint, patientID string, quantity int) (int64, error)
	Delete(db *gorm.DB, cartID uint, patientID string) error
	DeleteByPatient(db *gorm.DB, patientID string) error
}
