package usecase

import (
	"context"
	"io"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"
	"mediscript-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	GetMine(ctx context.Context) (*dto.PatientProfileResponse, error)
	UpdateMine(ctx context.Context, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
	UpdatePicture(ctx context.Context, picture io.Reader, pictureName string) (*dto.PatientProfileResponse, error)
	Dashboard(ctx context.Context) (*dto.PatientDashboardResponse, error)
}

type patientProfileUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientProfileRepository
	prescriptionRepo repository.PrescriptionRepository
	requestRepo      repository.RefillRequestRepository
	cartRepo         repository.RefillCartRepository
	files            service.FileStore
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	prescriptionRepo repository.PrescriptionRepository,
	requestRepo repository.RefillRequestRepository,
	cartRepo repository.RefillCartRepository,
	files service.FileStore,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
		requestRepo:      requestRepo,
		cartRepo:         cartRepo,
		files:            files,
	}
}

func (u *patientProfileUsecase) GetMine(ctx context.Context) (*dto.PatientProfileResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	profile, err := u.patientRepo.FindByID(u.db.WithContext(ctx), session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile %s: %+v", session.UserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

// UpdateMine applies only the fields present in the request.
func (u *patientProfileUsecase) UpdateMine(ctx context.Context, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
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
	if req.BloodGroup != nil {
		fields["blood_group"] = *req.BloodGroup
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ChronicConditions != nil {
		fields["chronic_conditions"] = *req.ChronicConditions
	}
	if req.Allergies != nil {
		fields["allergies"] = *req.Allergies
	}
	if req.PastSurgeries != nil {
		fields["past_surgeries"] = *req.PastSurgeries
	}
	if req.FamilyMedicalHistory != nil {
		fields["family_medical_history"] = *req.FamilyMedicalHistory
	}

	db := u.db.WithContext(ctx)

	if len(fields) > 0 {
		if err := u.patientRepo.UpdateFields(db, session.UserID, fields); err != nil {
			u.log.Warnf("Failed to update patient profile %s: %+v", session.UserID, err)
			return nil, err
		}
	}

	profile, err := u.patientRepo.FindByID(db, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) UpdatePicture(ctx context.Context, picture io.Reader, pictureName string) (*dto.PatientProfileResponse, error) {
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
	if err := u.patientRepo.UpdateFields(db, session.UserID, map[string]interface{}{
		"profile_picture_path": path,
	}); err != nil {
		u.log.Warnf("Failed to update picture path for %s: %+v", session.UserID, err)
		return nil, err
	}

	profile, err := u.patientRepo.FindByID(db, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) Dashboard(ctx context.Context) (*dto.PatientDashboardResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	db := u.db.WithContext(ctx)

	profile, err := u.patientRepo.FindByID(db, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile %s: %+v", session.UserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	prescriptions, err := u.prescriptionRepo.ListByPatient(db, session.UserID)
	if err != nil {
		return nil, err
	}

	requests, err := u.requestRepo.ListByPatient(db, session.UserID)
	if err != nil {
		return nil, err
	}
	pending := int64(0)
	for i := range requests {
		if requests[i].Status == entity.RequestStatusPending {
			pending++
		}
	}

	cart, err := u.cartRepo.ListByPatient(db, session.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.PatientDashboardResponse{
		FullName:        profile.FullName,
		Prescriptions:   int64(len(prescriptions)),
		PendingRequests: pending,
		CartItems:       len(cart),
	}, nil
}
