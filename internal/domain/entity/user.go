package entity

import "time"

// User represents the centralized authentication table.
// UserID is chosen by the user at registration (or by the applicant
// for doctors) and doubles as the login identifier.
type User struct {
	UserID       string     `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive     *bool      `gorm:"not null;default:true;index" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

func (u *User) Active() bool {
	return u.IsActive != nil && *u.IsActive
}
