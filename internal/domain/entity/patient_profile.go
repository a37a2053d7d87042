package entity

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID               string `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	FullName             string `gorm:"type:varchar(255);not null" json:"full_name"`
	Age                  int    `json:"age,omitempty"`
	Gender               string `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup           string `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	PhoneNumber          string `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address              string `gorm:"type:text" json:"address,omitempty"`
	ChronicConditions    string `gorm:"type:text" json:"chronic_conditions,omitempty"`
	Allergies            string `gorm:"type:text" json:"allergies,omitempty"`
	PastSurgeries        string `gorm:"type:text" json:"past_surgeries,omitempty"`
	FamilyMedicalHistory string `gorm:"type:text" json:"family_medical_history,omitempty"`
	ProfilePicturePath   string `gorm:"type:varchar(255)" json:"profile_picture_path,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patients"
}
