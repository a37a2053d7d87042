package dto

// Request DTOs

// UpdatePatientProfileRequest uses pointers so only supplied fields change.
type UpdatePatientProfileRequest struct {
	FullName             *string `json:"full_name" validate:"omitempty,min=2"`
	Age                  *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup           *string `json:"blood_group"`
	PhoneNumber          *string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address              *string `json:"address"`
	ChronicConditions    *string `json:"chronic_conditions"`
	Allergies            *string `json:"allergies"`
	PastSurgeries        *string `json:"past_surgeries"`
	FamilyMedicalHistory *string `json:"family_medical_history"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID               string `json:"user_id"`
	Email                string `json:"email,omitempty"`
	FullName             string `json:"full_name"`
	Age                  int    `json:"age,omitempty"`
	Gender               string `json:"gender,omitempty"`
	BloodGroup           string `json:"blood_group,omitempty"`
	PhoneNumber          string `json:"phone_number,omitempty"`
	Address              string `json:"address,omitempty"`
	ChronicConditions    string `json:"chronic_conditions,omitempty"`
	Allergies            string `json:"allergies,omitempty"`
	PastSurgeries        string `json:"past_surgeries,omitempty"`
	FamilyMedicalHistory string `json:"family_medical_history,omitempty"`
	ProfilePicturePath   string `json:"profile_picture_path,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientProfileResponse `json:"patients"`
	Total    int                      `json:"total"`
}

type PatientDashboardResponse struct {
	FullName        string `json:"full_name"`
	Prescriptions   int64  `json:"prescriptions"`
	PendingRequests int64  `json:"pending_requests"`
	CartItems       int    `json:"cart_items"`
}
