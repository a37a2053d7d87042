package repository

import (
	"errors"
	"time"

	"mediscript-server/internal/domain/entity"
	domainRepo "mediscript-server/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uint) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("name = ? AND status = ?", name, entity.MedicineStatusActive).
		First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) ListActive(db *gorm.DB) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Where("status = ?", entity.MedicineStatusActive).
		Order("name").
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) ListRefillQueue(db *gorm.DB) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Where("status = ?", entity.MedicineStatusRefill).
		Order("moved_to_refill_at DESC").
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) ListActiveExpiredOrDepleted(db *gorm.DB, today time.Time) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Where("status = ? AND (exp <= ? OR quantity <= 0)", entity.MedicineStatusActive, today).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

// MoveToRefill flips an active medicine into the refill queue. The status
// guard makes the transition idempotent: a row already in the queue matches
// nothing and RowsAffected is 0.
func (r *medicineRepository) MoveToRefill(db *gorm.DB, id uint, reason entity.RefillReason, at time.Time) (int64, error) {
	result := db.Model(&entity.Medicine{}).
		Where("id = ? AND status = ?", id, entity.MedicineStatusActive).
		Updates(map[string]interface{}{
			"status":             entity.MedicineStatusRefill,
			"refill_reason":      reason,
			"moved_to_refill_at": at,
		})
	return result.RowsAffected, result.Error
}

// Restock returns a refill-queue medicine to the active catalog, clearing
// the queue payload in the same update.
func (r *medicineRepository) Restock(db *gorm.DB, id uint, quantity int, mfd, exp time.Time, price decimal.Decimal) (int64, error) {
	result := db.Model(&entity.Medicine{}).
		Where("id = ? AND status = ?", id, entity.MedicineStatusRefill).
		Updates(map[string]interface{}{
			"quantity":           quantity,
			"mfd":                mfd,
			"exp":                exp,
			"price":              price,
			"status":             entity.MedicineStatusActive,
			"refill_reason":      "",
			"moved_to_refill_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *medicineRepository) DeleteRetired(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ? AND status = ?", id, entity.MedicineStatusRefill).
		Delete(&entity.Medicine{})
	return result.RowsAffected, result.Error
}

// DecrementQuantity subtracts delta from stock in a single UPDATE, floored
// at zero. Concurrent deliveries touching the same medicine each apply their
// own decrement instead of racing a read-modify-write.
func (r *medicineRepository) DecrementQuantity(db *gorm.DB, id uint, delta int) error {
	return db.Model(&entity.Medicine{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr(
			"CASE WHEN quantity - ? < 0 THEN 0 ELSE quantity - ? END", delta, delta)).Error
}

func (r *medicineRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Medicine{}).Count(&count).Error
	return count, err
}
