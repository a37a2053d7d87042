package repository

import (
	"time"

	"mediscript-server/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id uint) (*entity.Medicine, error)
	FindActiveByName(db *gorm.DB, name string) (*entity.Medicine, error)
	ListActive(db *gorm.DB) ([]entity.Medicine, error)
	ListRefillQueue(db *gorm.DB) ([]entity.Medicine, error)
	ListActiveExpiredOrDepleted(db *gorm.DB, today time.Time) ([]entity.Medicine, error)
	MoveToRefill(db *gorm.DB, id uint, reason entity.RefillReason, at time.Time) (int64, error)
	Restock(db *gorm.DB, id uint, quantity int, mfd, exp time.Time, price decimal.Decimal) (int64, error)
	DeleteRetired(db *gorm.DB, id uint) (int64, error)
	DecrementQuantity(db *gorm.DB, id uint, delta int) error
	Count(db *gorm.DB) (int64, error)
}
