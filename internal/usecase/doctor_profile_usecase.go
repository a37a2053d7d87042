package usecase

import (
	"context"
	"errors"
	"io"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/repository"
	"mediscript-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorProfileUsecase interface {
	GetMine(ctx context.Context) (*dto.DoctorProfileResponse, error)
	UpdateMine(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	UpdatePicture(ctx context.Context, picture io.Reader, pictureName string) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorProfileRepository
	files      service.FileStore
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	files service.FileStore,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		files:      files,
	}
}

func (u *doctorProfileUsecase) GetMine(ctx context.Context) (*dto.DoctorProfileResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	profile, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %s: %+v", session.UserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) UpdateMine(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Hospital != nil {
		fields["hospital"] = *req.Hospital
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.VisitingHours != nil {
		fields["visiting_hours"] = *req.VisitingHours
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}

	db := u.db.WithContext(ctx)

	if len(fields) > 0 {
		if err := u.doctorRepo.UpdateFields(db, session.UserID, fields); err != nil {
			u.log.Warnf("Failed to update doctor profile %s: %+v", session.UserID, err)
			return nil, err
		}
	}

	profile, err := u.doctorRepo.FindByID(db, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) UpdatePicture(ctx context.Context, picture io.Reader, pictureName string) (*dto.DoctorProfileResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	path, err := u.files.Save("profile_images", pictureName, picture)
	if err != nil {
		u.log.Warnf("Failed to store profile picture for %s: %+v", session.UserID, err)
		return nil, err
	}

	db := u.db.WithContext(ctx)
	if err := u.doctorRepo.UpdateFields(db, session.UserID, map[string]interface{}{
		"profile_picture_path": path,
	}); err != nil {
		u.log.Warnf("Failed to update picture path for %s: %+v", session.UserID, err)
		return nil, err
	}

	profile, err := u.doctorRepo.FindByID(db, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}
