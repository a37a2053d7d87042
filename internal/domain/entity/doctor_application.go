package entity

import "time"

// ApplicationStatus represents the review state of a doctor application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// DoctorApplication is an onboarding request reviewed by admin. On approval
// its data is copied into users + doctors; the application row is kept with
// status flipped.
type DoctorApplication struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"doctor_id"`
	FullName        string            `gorm:"type:varchar(255);not null" json:"full_name"`
	Email           string            `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber     string            `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	PasswordHash    string            `gorm:"type:text;not null" json:"-"`
	Age             int               `json:"age,omitempty"`
	Gender          string            `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Specialization  string            `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	BMDCNumber      string            `gorm:"column:bmdc_number;type:varchar(50);uniqueIndex;not null" json:"bmdc_number"`
	CurrentHospital string            `gorm:"type:varchar(255)" json:"current_hospital,omitempty"`
	ExperienceYears int               `json:"experience_years,omitempty"`
	LicensePDFPath  string            `gorm:"column:license_pdf_path;type:varchar(255)" json:"license_pdf_path,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (DoctorApplication) TableName() string {
	return "doctor_applications"
}

func (a *DoctorApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
