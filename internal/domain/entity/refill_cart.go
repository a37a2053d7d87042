package entity

import "time"

// CartItem is one staged prescription medicine line in a patient's refill
// cart. At most one row may exist per (patient_id, prescription_medicine_id)
// pair; the check is done before insert, not by a database constraint.
type CartItem struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID              string    `gorm:"type:varchar(50);not null;index" json:"patient_id"`
	PrescriptionMedicineID uint      `gorm:"not null;index" json:"prescription_medicine_id"`
	Quantity               int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt                time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Relationships
	PrescriptionMedicine PrescriptionMedicine `gorm:"foreignKey:PrescriptionMedicineID" json:"prescription_medicine,omitempty"`
}

func (CartItem) TableName() string {
	return "refill_cart"
}
