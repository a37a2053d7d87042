package dto

// Request DTOs

type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type RegisterPatientRequest struct {
	UserID      string `json:"user_id" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Age         int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  string `json:"blood_group"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     string `json:"address"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	OTPCode string `json:"otp_code" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Response DTOs

type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
