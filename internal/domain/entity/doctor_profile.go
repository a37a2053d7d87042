package entity

// DoctorProfile represents doctor-specific profile data. Rows are created
// only by admin approval of a DoctorApplication.
type DoctorProfile struct {
	UserID             string `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	FullName           string `gorm:"type:varchar(255);not null" json:"full_name"`
	Age                int    `json:"age,omitempty"`
	Gender             string `gorm:"type:varchar(10)" json:"gender,omitempty"`
	PhoneNumber        string `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Specialization     string `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	Department         string `gorm:"type:varchar(100)" json:"department,omitempty"`
	BMDCNumber         string `gorm:"column:bmdc_number;type:varchar(50)" json:"bmdc_number,omitempty"`
	Hospital           string `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	Address            string `gorm:"type:text" json:"address,omitempty"`
	VisitingHours      string `gorm:"type:varchar(100)" json:"visiting_hours,omitempty"`
	Bio                string `gorm:"type:text" json:"bio,omitempty"`
	ExperienceYears    int    `json:"experience_years,omitempty"`
	ProfilePicturePath string `gorm:"type:varchar(255)" json:"profile_picture_path,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctors"
}
