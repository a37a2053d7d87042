package repository

import (
	"mediscript-server/internal/domain/entity"

	"gorm.io/gorm"
)

type RefillRequestRepository interface {
	Create(db *gorm.DB, request *entity.RefillRequest) error
	CreateItem(db *gorm.DB, item *entity.RefillRequestItem) error
	FindByID(db *gorm.DB, id uint) (*entity.RefillRequest, error)
	FindByIDForPatient(db *gorm.DB, id uint, patientID string) (*entity.RefillRequest, error)
	ListByPatient(db *gorm.DB, patientID string) ([]entity.RefillRequest, error)
	List(db *gorm.DB, status entity.RequestStatus) ([]entity.RefillRequest, error)
	UpdateStatus(db *gorm.DB, id uint, status entity.RequestStatus) (int64, error)
	UpdateStatusFrom(db *gorm.DB, id uint, from, to entity.RequestStatus) (int64, error)
	ListItems(db *gorm.DB, requestID uint) ([]entity.RefillRequestItem, error)
	DeleteItems(db *gorm.DB, requestID uint) error
	ListFinished(db *gorm.DB) ([]entity.RefillRequest, error)
	DeleteFinished(db *gorm.DB) (int64, error)
	CreateHistory(db *gorm.DB, history *entity.RefillRequestHistory) error
	ListHistory(db *gorm.DB) ([]entity.RefillRequestHistory, error)
	CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error)
}
