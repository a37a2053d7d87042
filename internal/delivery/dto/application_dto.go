package dto

import "time"

// ApplyDoctorRequest carries the form fields of the multipart application.
// The license file itself travels alongside, not in this struct.
type ApplyDoctorRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required,min=3,max=50"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	Age             int    `json:"age" validate:"omitempty,gte=18,lte=100"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female other"`
	Specialization  string `json:"specialization" validate:"required"`
	BMDCNumber      string `json:"bmdc_number" validate:"required"`
	CurrentHospital string `json:"current_hospital"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
}

type ApplicationResponse struct {
	ID              uint      `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Age             int       `json:"age,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Specialization  string    `json:"specialization"`
	BMDCNumber      string    `json:"bmdc_number"`
	CurrentHospital string    `json:"current_hospital,omitempty"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	LicensePDFPath  string    `json:"license_pdf_path,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}
