package entity

import "time"

// PasswordReset holds the active OTP for a user. One row per user: a new
// request upserts and invalidates the prior code.
type PasswordReset struct {
	UserID    string    `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	OTPCode   string    `gorm:"column:otp_code;type:varchar(6);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
