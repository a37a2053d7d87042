package repository

import (
	"errors"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"gorm.io/gorm"
)

type refillRequestRepository struct{}

func NewRefillRequestRepository() domainRepo.RefillRequestRepository {
	return &refillRequestRepository{}
}

func (r *refillRequestRepository) Create(db *gorm.DB, request *entity.RefillRequest) error {
	return db.Create(request).Error
}

func (r *refillRequestRepository) CreateItem(db *gorm.DB, item *entity.RefillRequestItem) error {
	return db.Create(item).Error
}

func (r *refillRequestRepository) FindByID(db *gorm.DB, id uint) (*entity.RefillRequest, error) {
	var request entity.RefillRequest
	err := db.Preload("Patient").
		Preload("Items.PrescriptionMedicine.Medicine").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *refillRequestRepository) FindByIDForPatient(db *gorm.DB, id uint, patientID string) (*entity.RefillRequest, error) {
	var request entity.RefillRequest
	err := db.Preload("Items.PrescriptionMedicine.Medicine").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *refillRequestRepository) ListByPatient(db *gorm.DB, patientID string) ([]entity.RefillRequest, error) {
	var requests []entity.RefillRequest
	err := db.Preload("Items.PrescriptionMedicine.Medicine").
		Where("patient_id = ?", patientID).
		Order("submitted_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *refillRequestRepository) List(db *gorm.DB, status entity.RequestStatus) ([]entity.RefillRequest, error) {
	query := db.Preload("Patient").
		Preload("Items.PrescriptionMedicine.Medicine").
		Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []entity.RefillRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *refillRequestRepository) UpdateStatus(db *gorm.DB, id uint, status entity.RequestStatus) (int64, error) {
	result := db.Model(&entity.RefillRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// UpdateStatusFrom only transitions a request that is still in the expected
// state. RowsAffected reports whether the transition happened.
func (r *refillRequestRepository) UpdateStatusFrom(db *gorm.DB, id uint, from, to entity.RequestStatus) (int64, error) {
	result := db.Model(&entity.RefillRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *refillRequestRepository) ListItems(db *gorm.DB, requestID uint) ([]entity.RefillRequestItem, error) {
	var items []entity.RefillRequestItem
	err := db.Preload("PrescriptionMedicine.Medicine").
		Where("request_id = ?", requestID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *refillRequestRepository) DeleteItems(db *gorm.DB, requestID uint) error {
	return db.Where("request_id = ?", requestID).
		Delete(&entity.RefillRequestItem{}).Error
}

func (r *refillRequestRepository) ListFinished(db *gorm.DB) ([]entity.RefillRequest, error) {
	var requests []entity.RefillRequest
	err := db.Where("status IN ?", []entity.RequestStatus{entity.RequestStatusDeclined, entity.RequestStatusDelivered}).
		Order("submitted_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *refillRequestRepository) DeleteFinished(db *gorm.DB) (int64, error) {
	result := db.Where("status IN ?", []entity.RequestStatus{entity.RequestStatusDeclined, entity.RequestStatusDelivered}).
		Delete(&entity.RefillRequest{})
	return result.RowsAffected, result.Error
}

func (r *refillRequestRepository) CreateHistory(db *gorm.DB, history *entity.RefillRequestHistory) error {
	return db.Create(history).Error
}

func (r *refillRequestRepository) ListHistory(db *gorm.DB) ([]entity.RefillRequestHistory, error) {
	var rows []entity.RefillRequestHistory
	if err := db.Order("archived_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *refillRequestRepository) CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.RefillRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
