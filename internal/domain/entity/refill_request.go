package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle of a refill request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusDelivered RequestStatus = "delivered"
)

// RefillRequest is a submitted, admin-reviewable bundle of cart items.
// Items are snapshotted from the cart at submission time.
type RefillRequest struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"request_id"`
	PatientID      string        `gorm:"type:varchar(50);not null;index" json:"patient_id"`
	Address        string        `gorm:"type:text" json:"address,omitempty"`
	Notes          string        `gorm:"type:text" json:"notes,omitempty"`
	Status         RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DeliveryMethod string        `gorm:"type:varchar(50)" json:"delivery_method,omitempty"`
	SubmittedAt    time.Time     `gorm:"autoCreateTime;index" json:"submitted_at"`

	// Relationships
	Patient PatientProfile      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []RefillRequestItem `gorm:"foreignKey:RequestID" json:"items,omitempty"`
}

func (RefillRequest) TableName() string {
	return "refill_requests"
}

func (r *RefillRequest) IsFinished() bool {
	return r.Status == RequestStatusDelivered || r.Status == RequestStatusDeclined
}

// RefillRequestItem is one priced line of a request, snapshotted from a
// CartItem. UnitPrice is the inventory price at submission time (zero for
// custom medicines).
type RefillRequestItem struct {
	ID                     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID              uint            `gorm:"not null;index" json:"request_id"`
	PrescriptionMedicineID uint            `gorm:"not null;index" json:"prescription_medicine_id"`
	Quantity               int             `gorm:"not null" json:"quantity"`
	UnitPrice              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	// Relationships
	PrescriptionMedicine PrescriptionMedicine `gorm:"foreignKey:PrescriptionMedicineID" json:"prescription_medicine,omitempty"`
}

func (RefillRequestItem) TableName() string {
	return "refill_request_items"
}

// RefillRequestHistory is an append-only archive pointer. Archiving deletes
// the referenced request row in the same transaction, so the pointer is all
// that survives.
type RefillRequestHistory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID  uint      `gorm:"not null;index" json:"request_id"`
	ArchivedAt time.Time `gorm:"autoCreateTime;index" json:"archived_at"`
}

func (RefillRequestHistory) TableName() string {
	return "refill_request_history"
}
