package dto

import "time"

// Request DTOs

type PrescriptionMedicineInput struct {
	Name       string `json:"name" validate:"required"`
	Dosage     string `json:"dosage"`
	Timing     string `json:"timing"`
	Duration   string `json:"duration"`
	Notes      string `json:"notes"`
	Refillable bool   `json:"refillable"`
}

type CreatePrescriptionRequest struct {
	PatientID string                      `json:"patient_id" validate:"required"`
	Symptoms  string                      `json:"symptoms" validate:"required"`
	Diagnosis string                      `json:"diagnosis" validate:"required"`
	Tests     []string                    `json:"tests"`
	Medicines []PrescriptionMedicineInput `json:"medicines" validate:"required,min=1,dive"`
}

// Response DTOs

type PrescriptionLineResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage,omitempty"`
	Timing     string `json:"timing,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Refillable bool   `json:"refillable"`
	IsCustom   bool   `json:"is_custom"`
}

type PrescriptionSummaryResponse struct {
	ID           uint      `json:"id"`
	DoctorName   string    `json:"doctor_name"`
	Diagnosis    string    `json:"diagnosis"`
	CreatedAt    time.Time `json:"created_at"`
	RefillStatus string    `json:"refill_status"`
}

type PrescriptionDetailResponse struct {
	ID          uint                       `json:"id"`
	PatientID   string                     `json:"patient_id"`
	PatientName string                     `json:"patient_name,omitempty"`
	DoctorName  string                     `json:"doctor_name,omitempty"`
	Symptoms    string                     `json:"symptoms"`
	Diagnosis   string                     `json:"diagnosis"`
	CreatedAt   time.Time                  `json:"created_at"`
	Tests       []string                   `json:"tests"`
	Medicines   []PrescriptionLineResponse `json:"medicines"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionSummaryResponse `json:"prescriptions"`
	Total         int                           `json:"total"`
}

type CreatePrescriptionResponse struct {
	PrescriptionID uint `json:"prescription_id"`
}

// PatientOverviewResponse backs the doctor's prescribe form: the patient's
// profile alongside their recent history.
type PatientOverviewResponse struct {
	Patient             PatientProfileResponse        `json:"patient"`
	RecentPrescriptions []PrescriptionSummaryResponse `json:"recent_prescriptions"`
	RecentMedicines     []PrescriptionLineResponse    `json:"recent_medicines"`
}
