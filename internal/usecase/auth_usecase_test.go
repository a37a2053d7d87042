package usecase

import (
	"context"
	"testing"
	"time"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/repository"
	"mediscript-server/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type authEnv struct {
	uc       AuthUsecase
	db       *gorm.DB
	sessions *memorySessionStore
	mailer   *fakeMailer
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	db := newTestDB(t)
	sessions := newMemorySessionStore()
	mailer := &fakeMailer{}
	uc := NewAuthUsecase(db, newTestLogger(),
		repository.NewUserRepository(),
		repository.NewPatientProfileRepository(),
		repository.NewPasswordResetRepository(),
		sessions,
		mailer)
	return &authEnv{uc: uc, db: db, sessions: sessions, mailer: mailer}
}

func TestRegisterPatient(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()

	resp, err := env.uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		UserID:   "pat1",
		Email:    "pat1@example.com",
		Password: "secret123",
		FullName: "Rahim Uddin",
		Age:      34,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", resp.FullName)

	var user entity.User
	require.NoError(t, env.db.First(&user, "user_id = ?", "pat1").Error)
	assert.Equal(t, entity.RolePatient, user.Role)
	assert.True(t, user.Active())
	assert.True(t, password.Compare(user.PasswordHash, "secret123"))

	var profile entity.PatientProfile
	require.NoError(t, env.db.First(&profile, "user_id = ?", "pat1").Error)
	assert.Equal(t, "Rahim Uddin", profile.FullName)
}

func TestRegisterPatientDuplicate(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()
	seedPatient(t, env.db, "pat1")

	_, err := env.uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		UserID:   "pat1",
		Email:    "fresh@example.com",
		Password: "secret123",
		FullName: "Someone",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// Same email under a new id also collides.
	_, err = env.uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		UserID:   "pat9",
		Email:    "pat1@example.com",
		Password: "secret123",
		FullName: "Someone",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()
	seedPatient(t, env.db, "pat1")

	resp, err := env.uc.Login(ctx, &dto.LoginRequest{UserID: "pat1", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolePatient, resp.Role)
	assert.Equal(t, "/patient/dashboard", resp.Redirect)
	require.NotEmpty(t, resp.Token)

	session, err := env.sessions.Get(ctx, resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "pat1", session.UserID)

	var user entity.User
	require.NoError(t, env.db.First(&user, "user_id = ?", "pat1").Error)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginUnknownUser(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)

	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{UserID: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginInactiveAccount(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	seedPatient(t, env.db, "pat1")
	require.NoError(t, env.db.Model(&entity.User{}).Where("user_id = ?", "pat1").Update("is_active", false).Error)

	// The active check runs before the password check.
	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{UserID: "pat1", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	seedPatient(t, env.db, "pat1")

	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{UserID: "pat1", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogoutDestroysSession(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()
	seedPatient(t, env.db, "pat1")

	resp, err := env.uc.Login(ctx, &dto.LoginRequest{UserID: "pat1", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(ctx, resp.Token))

	session, err := env.sessions.Get(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()
	seedPatient(t, env.db, "pat1")

	require.NoError(t, env.uc.RequestPasswordReset(ctx, &dto.ForgotPasswordRequest{Email: "pat1@example.com"}))

	var reset entity.PasswordReset
	require.NoError(t, env.db.First(&reset, "user_id = ?", "pat1").Error)
	require.Len(t, reset.OTPCode, 6)

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "pat1@example.com", env.mailer.sent[0].To)
	assert.Contains(t, env.mailer.sent[0].Body, reset.OTPCode)

	assert.ErrorIs(t, env.uc.VerifyOTP(ctx, &dto.VerifyOTPRequest{UserID: "pat1", OTPCode: "000000x"}), ErrInvalidOTP)
	require.NoError(t, env.uc.VerifyOTP(ctx, &dto.VerifyOTPRequest{UserID: "pat1", OTPCode: reset.OTPCode}))

	require.NoError(t, env.uc.ResetPassword(ctx, &dto.ResetPasswordRequest{UserID: "pat1", NewPassword: "brandnew1"}))

	// The OTP row is consumed with the password change.
	var count int64
	require.NoError(t, env.db.Model(&entity.PasswordReset{}).Where("user_id = ?", "pat1").Count(&count).Error)
	assert.Zero(t, count)

	_, err := env.uc.Login(ctx, &dto.LoginRequest{UserID: "pat1", Password: "secret123"})
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = env.uc.Login(ctx, &dto.LoginRequest{UserID: "pat1", Password: "brandnew1"})
	require.NoError(t, err)
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)

	err := env.uc.RequestPasswordReset(context.Background(), &dto.ForgotPasswordRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, ErrEmailNotFound)
	assert.Empty(t, env.mailer.sent)
}

func TestPasswordResetReissueReplacesOTP(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	ctx := context.Background()
	seedPatient(t, env.db, "pat1")

	require.NoError(t, env.db.Create(&entity.PasswordReset{
		UserID:    "pat1",
		OTPCode:   "111111",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}).Error)

	require.NoError(t, env.uc.RequestPasswordReset(ctx, &dto.ForgotPasswordRequest{Email: "pat1@example.com"}))

	// One row per user: the old code is gone.
	var count int64
	require.NoError(t, env.db.Model(&entity.PasswordReset{}).Where("user_id = ?", "pat1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyOTPExpired(t *testing.T) {
	t.Parallel()
	env := newAuthEnv(t)
	seedPatient(t, env.db, "pat1")

	require.NoError(t, env.db.Create(&entity.PasswordReset{
		UserID:    "pat1",
		OTPCode:   "222222",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	err := env.uc.VerifyOTP(context.Background(), &dto.VerifyOTPRequest{UserID: "pat1", OTPCode: "222222"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}
