package usecase

import (
	"context"
	"errors"
	"io"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"
	"mediscript-server/internal/service"
	"mediscript-server/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrApplicationConflict = errors.New("doctor id, email or BMDC number already registered")
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, req *dto.ApplyDoctorRequest, license io.Reader, licenseName string) (*dto.ApplicationResponse, error)
	ListPending(ctx context.Context) (*dto.ApplicationListResponse, error)
	Get(ctx context.Context, doctorID string) (*dto.ApplicationResponse, error)
	Approve(ctx context.Context, doctorID string) error
	Reject(ctx context.Context, doctorID string) error
}

type applicationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	applicationRepo repository.ApplicationRepository
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorProfileRepository
	files           service.FileStore
}

func NewApplicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	applicationRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	files service.FileStore,
) ApplicationUsecase {
	return &applicationUsecase{
		db:              db,
		log:             log,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		files:           files,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, req *dto.ApplyDoctorRequest, license io.Reader, licenseName string) (*dto.ApplicationResponse, error) {
	db := u.db.WithContext(ctx)

	conflict, err := u.applicationRepo.ExistsConflict(db, req.DoctorID, req.Email, req.BMDCNumber)
	if err != nil {
		u.log.Warnf("Failed to check application conflicts: %+v", err)
		return nil, err
	}
	if conflict {
		return nil, ErrApplicationConflict
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		u.log.Errorf("Failed to hash password: %+v", err)
		return nil, err
	}

	licensePath := ""
	if license != nil {
		licensePath, err = u.files.Save("licenses", licenseName, license)
		if err != nil {
			u.log.Warnf("Failed to store license file: %+v", err)
			return nil, err
		}
	}

	app := &entity.DoctorApplication{
		DoctorID:        req.DoctorID,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PasswordHash:    hash,
		Age:             req.Age,
		Gender:          req.Gender,
		Specialization:  req.Specialization,
		BMDCNumber:      req.BMDCNumber,
		CurrentHospital: req.CurrentHospital,
		ExperienceYears: req.ExperienceYears,
		LicensePDFPath:  licensePath,
		Status:          entity.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(db, app); err != nil {
		if isDuplicateKeyError(err, "") {
			return nil, ErrApplicationConflict
		}
		u.log.Warnf("Failed to create application for %s: %+v", req.DoctorID, err)
		return nil, err
	}

	u.log.Infof("Doctor application submitted: %s", req.DoctorID)
	return converter.ApplicationToResponse(app), nil
}

func (u *applicationUsecase) ListPending(ctx context.Context) (*dto.ApplicationListResponse, error) {
	apps, err := u.applicationRepo.ListPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pending applications: %+v", err)
		return nil, err
	}

	return &dto.ApplicationListResponse{
		Applications: converter.ApplicationsToResponses(apps),
		Total:        len(apps),
	}, nil
}

func (u *applicationUsecase) Get(ctx context.Context, doctorID string) (*dto.ApplicationResponse, error) {
	app, err := u.applicationRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find application %s: %+v", doctorID, err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	return converter.ApplicationToResponse(app), nil
}

// Approve copies the application into users and doctors, then flips the
// application status, all in one transaction.
func (u *applicationUsecase) Approve(ctx context.Context, doctorID string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := u.applicationRepo.FindByDoctorID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find application %s: %+v", doctorID, err)
		return err
	}
	if app == nil || !app.IsPending() {
		return ErrApplicationNotFound
	}

	active := true
	user := &entity.User{
		UserID:       app.DoctorID,
		Email:        app.Email,
		PasswordHash: app.PasswordHash,
		Role:         entity.RoleDoctor,
		IsActive:     &active,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "") {
			return ErrApplicationConflict
		}
		u.log.Warnf("Failed to create doctor user %s: %+v", app.DoctorID, err)
		return err
	}

	profile := &entity.DoctorProfile{
		UserID:          app.DoctorID,
		FullName:        app.FullName,
		Age:             app.Age,
		Gender:          app.Gender,
		PhoneNumber:     app.PhoneNumber,
		Specialization:  app.Specialization,
		BMDCNumber:      app.BMDCNumber,
		Hospital:        app.CurrentHospital,
		ExperienceYears: app.ExperienceYears,
	}
	if err := u.doctorRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile %s: %+v", app.DoctorID, err)
		return err
	}

	rows, err := u.applicationRepo.UpdateStatus(tx, doctorID, entity.ApplicationStatusApproved)
	if err != nil {
		u.log.Warnf("Failed to update application %s: %+v", doctorID, err)
		return err
	}
	if rows == 0 {
		return ErrApplicationNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit approval of %s: %+v", doctorID, err)
		return err
	}

	u.log.Infof("Doctor application approved: %s", doctorID)
	return nil
}

func (u *applicationUsecase) Reject(ctx context.Context, doctorID string) error {
	rows, err := u.applicationRepo.UpdateStatus(u.db.WithContext(ctx), doctorID, entity.ApplicationStatusRejected)
	if err != nil {
		u.log.Warnf("Failed to reject application %s: %+v", doctorID, err)
		return err
	}
	if rows == 0 {
		return ErrApplicationNotFound
	}

	u.log.Infof("Doctor application rejected: %s", doctorID)
	return nil
}
