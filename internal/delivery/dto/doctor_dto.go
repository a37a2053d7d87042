package dto

// Request DTOs

type UpdateDoctorProfileRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=2"`
	Age             *int    `json:"age" validate:"omitempty,gte=18,lte=100"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=male female other"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Specialization  *string `json:"specialization"`
	Department      *string `json:"department"`
	Hospital        *string `json:"hospital"`
	Address         *string `json:"address"`
	VisitingHours   *string `json:"visiting_hours"`
	Bio             *string `json:"bio"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID             string `json:"user_id"`
	Email              string `json:"email,omitempty"`
	FullName           string `json:"full_name"`
	Age                int    `json:"age,omitempty"`
	Gender             string `json:"gender,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	Specialization     string `json:"specialization,omitempty"`
	Department         string `json:"department,omitempty"`
	BMDCNumber         string `json:"bmdc_number,omitempty"`
	Hospital           string `json:"hospital,omitempty"`
	Address            string `json:"address,omitempty"`
	VisitingHours      string `json:"visiting_hours,omitempty"`
	Bio                string `json:"bio,omitempty"`
	ExperienceYears    int    `json:"experience_years,omitempty"`
	ProfilePicturePath string `json:"profile_picture_path,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorProfileResponse `json:"doctors"`
	Total   int                     `json:"total"`
}
