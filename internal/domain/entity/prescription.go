package entity

import "time"

// Prescription is authored by a doctor for a patient and is immutable once
// created: no update path exists anywhere in the system.
type Prescription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"prescription_id"`
	PatientID string    `gorm:"type:varchar(50);not null;index" json:"patient_id"`
	DoctorID  string    `gorm:"type:varchar(50);not null;index" json:"doctor_id"`
	Symptoms  string    `gorm:"type:text" json:"symptoms,omitempty"`
	Diagnosis string    `gorm:"type:text" json:"diagnosis,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient   PatientProfile         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    DoctorProfile          `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Tests     []PrescriptionTest     `gorm:"foreignKey:PrescriptionID" json:"tests,omitempty"`
	Medicines []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionTest is a suggested test line on a prescription
type PrescriptionTest struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	TestName       string `gorm:"type:varchar(255);not null" json:"test_name"`
}

func (PrescriptionTest) TableName() string {
	return "prescription_tests"
}

// PrescriptionMedicine is a prescribed medicine line. MedicineID is nil for a
// custom medicine that has no inventory record.
type PrescriptionMedicine struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	MedicineID     *uint  `gorm:"index" json:"medicine_id,omitempty"`
	Dosage         string `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Timing         string `gorm:"type:varchar(100)" json:"timing,omitempty"`
	Duration       string `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`
	Refillable     bool   `gorm:"not null;default:false" json:"refillable"`

	// Relationships
	Medicine *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}

// IsCustom reports whether the line has no backing inventory record
func (pm *PrescriptionMedicine) IsCustom() bool {
	return pm.MedicineID == nil
}
