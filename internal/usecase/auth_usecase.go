package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"
	"mediscript-server/internal/service"
	"mediscript-server/pkg/password"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountInactive = errors.New("account is deactivated")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrDuplicateUser   = errors.New("user id or email already exists")
	ErrEmailNotFound   = errors.New("no account with that email")
	ErrInvalidOTP      = errors.New("invalid or expired OTP")
)

const otpTTL = 10 * time.Minute

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, req *dto.ForgotPasswordRequest) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientProfileRepository
	resetRepo   repository.PasswordResetRepository
	sessions    service.SessionStore
	mailer      service.Mailer
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	resetRepo repository.PasswordResetRepository,
	sessions service.SessionStore,
	mailer service.Mailer,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
		resetRepo:   resetRepo,
		sessions:    sessions,
		mailer:      mailer,
	}
}

func redirectForRole(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin/dashboard"
	case entity.RoleDoctor:
		return "/doctor/dashboard"
	default:
		return "/patient/dashboard"
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.userRepo.ExistsByIDOrEmail(tx, req.UserID, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		u.log.Errorf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		UserID:       req.UserID,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RolePatient,
		IsActive:     &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "") {
			return nil, ErrDuplicateUser
		}
		u.log.Warnf("Failed to create user %s: %+v", req.UserID, err)
		return nil, err
	}

	profile := &entity.PatientProfile{
		UserID:      req.UserID,
		FullName:    req.FullName,
		Age:         req.Age,
		Gender:      req.Gender,
		BloodGroup:  req.BloodGroup,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := u.patientRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile %s: %+v", req.UserID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit patient registration: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: %s", req.UserID)
	profile.User = *user
	return converter.PatientProfileToResponse(profile), nil
}

// Login resolves the credential row, checks the active flag before the
// password, records last_login and opens a session. An unknown user id is
// reported the same way as a bad password at the HTTP layer.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.Active() {
		return nil, ErrAccountInactive
	}

	if !password.Compare(user.PasswordHash, req.Password) {
		return nil, ErrWrongPassword
	}

	if err := u.userRepo.UpdateLastLogin(u.db.WithContext(ctx), user.UserID, time.Now()); err != nil {
		u.log.Warnf("Failed to update last_login for %s: %+v", user.UserID, err)
		return nil, err
	}

	token, err := u.sessions.Create(ctx, &service.Session{
		UserID: user.UserID,
		Role:   user.Role,
		Email:  user.Email,
	})
	if err != nil {
		u.log.Errorf("Failed to create session for %s: %+v", user.UserID, err)
		return nil, err
	}

	u.log.Infof("User logged in: %s (%s)", user.UserID, user.Role)
	return &dto.LoginResponse{
		Message:  "Login successful",
		Redirect: redirectForRole(user.Role),
		Role:     user.Role,
		Token:    token,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if err := u.sessions.Delete(ctx, token); err != nil {
		u.log.Warnf("Failed to destroy session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RequestPasswordReset(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrEmailNotFound
	}

	code, err := generateOTP()
	if err != nil {
		u.log.Errorf("Failed to generate OTP: %+v", err)
		return err
	}

	reset := &entity.PasswordReset{
		UserID:    user.UserID,
		OTPCode:   code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := u.resetRepo.Upsert(u.db.WithContext(ctx), reset); err != nil {
		u.log.Warnf("Failed to store OTP for %s: %+v", user.UserID, err)
		return err
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code)
	if err := u.mailer.Send(ctx, user.Email, "Password Reset Code", body); err != nil {
		u.log.Errorf("Failed to send OTP mail to %s: %+v", user.Email, err)
		return err
	}

	u.log.Infof("Password reset OTP issued for %s", user.UserID)
	return nil
}

func (u *authUsecase) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) error {
	reset, err := u.resetRepo.Find(u.db.WithContext(ctx), req.UserID, req.OTPCode)
	if err != nil {
		u.log.Warnf("Failed to look up OTP for %s: %+v", req.UserID, err)
		return err
	}
	if reset == nil || reset.Expired(time.Now()) {
		return ErrInvalidOTP
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		u.log.Errorf("Failed to hash password: %+v", err)
		return err
	}

	if err := u.userRepo.UpdatePassword(tx, user.UserID, hash); err != nil {
		u.log.Warnf("Failed to update password for %s: %+v", user.UserID, err)
		return err
	}

	if err := u.resetRepo.Delete(tx, user.UserID); err != nil {
		u.log.Warnf("Failed to delete OTP row for %s: %+v", user.UserID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit password reset: %+v", err)
		return err
	}

	u.log.Infof("Password reset for %s", user.UserID)
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name. An empty name matches
// any unique violation.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
