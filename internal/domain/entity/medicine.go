package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MedicineStatus represents where a medicine lives in the catalog lifecycle
type MedicineStatus string

const (
	MedicineStatusActive MedicineStatus = "active"
	MedicineStatusRefill MedicineStatus = "refill"
)

// RefillReason explains why a medicine was pulled from the active catalog
type RefillReason string

const (
	RefillReasonExpired    RefillReason = "expired"
	RefillReasonOutOfStock RefillReason = "out_of_stock"
	RefillReasonManual     RefillReason = "manual"
)

// Medicine is a catalog inventory record. The refill queue is not a separate
// table: a medicine with Status=refill IS a queue entry, with RefillReason and
// MovedToRefillAt as the state-specific payload. This keeps the status column
// and queue membership from ever disagreeing.
type Medicine struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"medicine_id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Type        string          `gorm:"type:varchar(50)" json:"type,omitempty"`
	Strength    string          `gorm:"type:varchar(50)" json:"strength,omitempty"`
	GenericName string          `gorm:"type:varchar(255)" json:"generic_name,omitempty"`
	BatchNo     string          `gorm:"type:varchar(50)" json:"batch_no,omitempty"`
	Category    string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Mfd         time.Time       `gorm:"type:date" json:"mfd"`
	Exp         time.Time       `gorm:"type:date" json:"exp"`
	Status      MedicineStatus  `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// Refill-queue payload, set only while Status=refill
	RefillReason    RefillReason `gorm:"type:varchar(20)" json:"refill_reason,omitempty"`
	MovedToRefillAt *time.Time   `json:"moved_to_refill_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicine_inventory"
}

func (m *Medicine) IsActive() bool {
	return m.Status == MedicineStatusActive
}

// RemovalReason computes why an active medicine is being pulled:
// out_of_stock wins over expired, manual is the fallback.
func (m *Medicine) RemovalReason(today time.Time) RefillReason {
	switch {
	case m.Quantity <= 0:
		return RefillReasonOutOfStock
	case !m.Exp.After(today):
		return RefillReasonExpired
	default:
		return RefillReasonManual
	}
}
