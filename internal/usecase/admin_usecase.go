package usecase

import (
	"context"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	Summary(ctx context.Context) (*dto.AdminSummaryResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	RemoveDoctor(ctx context.Context, userID string) error
	RemovePatient(ctx context.Context, userID string) error
}

type adminUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	medicineRepo    repository.MedicineRepository
	applicationRepo repository.ApplicationRepository
	requestRepo     repository.RefillRequestRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	medicineRepo repository.MedicineRepository,
	applicationRepo repository.ApplicationRepository,
	requestRepo repository.RefillRequestRepository,
) AdminUsecase {
	return &adminUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		medicineRepo:    medicineRepo,
		applicationRepo: applicationRepo,
		requestRepo:     requestRepo,
	}
}

func (u *adminUsecase) Summary(ctx context.Context) (*dto.AdminSummaryResponse, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	medicines, err := u.medicineRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count medicines: %+v", err)
		return nil, err
	}

	pendingApps, err := u.applicationRepo.CountPending(db)
	if err != nil {
		u.log.Warnf("Failed to count pending applications: %+v", err)
		return nil, err
	}

	pendingRequests, err := u.requestRepo.CountByStatus(db, entity.RequestStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}

	return &dto.AdminSummaryResponse{
		Doctors:             doctors,
		Patients:            patients,
		Medicines:           medicines,
		PendingApplications: pendingApps,
		PendingRequests:     pendingRequests,
	}, nil
}

func (u *adminUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.ListActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *adminUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.ListActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(patients),
		Total:    len(patients),
	}, nil
}

// RemoveDoctor deactivates the credential row, then detaches the profile.
// Prescriptions keep referencing the user id, so the user row itself stays.
func (u *adminUsecase) RemoveDoctor(ctx context.Context, userID string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if err := u.userRepo.Deactivate(tx, userID); err != nil {
		u.log.Warnf("Failed to deactivate doctor %s: %+v", userID, err)
		return err
	}

	if err := u.doctorRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete doctor profile %s: %+v", userID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit doctor removal: %+v", err)
		return err
	}

	u.log.Infof("Doctor removed: %s", userID)
	return nil
}

func (u *adminUsecase) RemovePatient(ctx context.Context, userID string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", userID, err)
		return err
	}
	if profile == nil {
		return ErrPatientNotFound
	}

	if err := u.userRepo.Deactivate(tx, userID); err != nil {
		u.log.Warnf("Failed to deactivate patient %s: %+v", userID, err)
		return err
	}

	if err := u.patientRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete patient profile %s: %+v", userID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit patient removal: %+v", err)
		return err
	}

	u.log.Infof("Patient removed: %s", userID)
	return nil
}
