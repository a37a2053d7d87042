package usecase

import (
	"context"
	"errors"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrNoSession            = errors.New("no session in request context")
)

// Refill status labels shown on the patient's prescription list
const (
	RefillStatusFull    = "Refillable"
	RefillStatusPartial = "Partially Refillable"
	RefillStatusNone    = "Non-Refillable"
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.CreatePrescriptionResponse, error)
	ListMine(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetMine(ctx context.Context, id uint) (*dto.PrescriptionDetailResponse, error)
	Get(ctx context.Context, id uint) (*dto.PrescriptionDetailResponse, error)
	PatientOverview(ctx context.Context, patientID string) (*dto.PatientOverviewResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	medicineRepo     repository.MedicineRepository
	patientRepo      repository.PatientProfileRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	medicineRepo repository.MedicineRepository,
	patientRepo repository.PatientProfileRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		medicineRepo:     medicineRepo,
		patientRepo:      patientRepo,
	}
}

// Create writes the header, test lines and medicine lines in one transaction.
// Medicine names are resolved against the active catalog; unmatched names
// become custom lines with no inventory link.
func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.CreatePrescriptionResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		PatientID: req.PatientID,
		DoctorID:  session.UserID,
		Symptoms:  req.Symptoms,
		Diagnosis: req.Diagnosis,
	}
	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	for _, testName := range req.Tests {
		if testName == "" {
			continue
		}
		test := &entity.PrescriptionTest{
			PrescriptionID: prescription.ID,
			TestName:       testName,
		}
		if err := u.prescriptionRepo.CreateTest(tx, test); err != nil {
			u.log.Warnf("Failed to create prescription test: %+v", err)
			return nil, err
		}
	}

	for _, input := range req.Medicines {
		var medicineID *uint
		medicine, err := u.medicineRepo.FindActiveByName(tx, input.Name)
		if err != nil {
			u.log.Warnf("Failed to resolve medicine %q: %+v", input.Name, err)
			return nil, err
		}
		if medicine != nil {
			medicineID = &medicine.ID
		}

		line := &entity.PrescriptionMedicine{
			PrescriptionID: prescription.ID,
			MedicineID:     medicineID,
			Dosage:         input.Dosage,
			Timing:         input.Timing,
			Duration:       input.Duration,
			Notes:          input.Notes,
			Refillable:     input.Refillable,
		}
		if err := u.prescriptionRepo.CreateMedicineLine(tx, line); err != nil {
			u.log.Warnf("Failed to create prescription medicine line: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit prescription: %+v", err)
		return nil, err
	}

	u.log.Infof("Prescription %d created by %s for %s", prescription.ID, session.UserID, req.PatientID)
	return &dto.CreatePrescriptionResponse{PrescriptionID: prescription.ID}, nil
}

func refillStatusOf(lines []entity.PrescriptionMedicine) string {
	refillable := 0
	for i := range lines {
		if CheckRefillable(&lines[i]) {
			refillable++
		}
	}
	switch {
	case len(lines) == 0 || refillable == 0:
		return RefillStatusNone
	case refillable == len(lines):
		return RefillStatusFull
	default:
		return RefillStatusPartial
	}
}

func (u *prescriptionUsecase) ListMine(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	prescriptions, err := u.prescriptionRepo.ListByPatient(u.db.WithContext(ctx), session.UserID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for %s: %+v", session.UserID, err)
		return nil, err
	}

	summaries := make([]dto.PrescriptionSummaryResponse, len(prescriptions))
	for i := range prescriptions {
		summaries[i] = converter.PrescriptionToSummary(&prescriptions[i], refillStatusOf(prescriptions[i].Medicines))
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: summaries,
		Total:         len(summaries),
	}, nil
}

func (u *prescriptionUsecase) GetMine(ctx context.Context, id uint) (*dto.PrescriptionDetailResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	prescription, err := u.prescriptionRepo.FindByIDForPatient(u.db.WithContext(ctx), id, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToDetail(prescription), nil
}

func (u *prescriptionUsecase) Get(ctx context.Context, id uint) (*dto.PrescriptionDetailResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToDetail(prescription), nil
}

// PatientOverview backs the doctor's prescribe form with the patient's
// profile and recent history.
func (u *prescriptionUsecase) PatientOverview(ctx context.Context, patientID string) (*dto.PatientOverviewResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	recent, err := u.prescriptionRepo.ListRecentByPatient(db, patientID, 5)
	if err != nil {
		u.log.Warnf("Failed to list recent prescriptions for %s: %+v", patientID, err)
		return nil, err
	}

	recentLines, err := u.prescriptionRepo.ListRecentLinesByPatient(db, patientID, 10)
	if err != nil {
		u.log.Warnf("Failed to list recent medicine lines for %s: %+v", patientID, err)
		return nil, err
	}

	summaries := make([]dto.PrescriptionSummaryResponse, len(recent))
	for i := range recent {
		summaries[i] = converter.PrescriptionToSummary(&recent[i], refillStatusOf(recent[i].Medicines))
	}

	return &dto.PatientOverviewResponse{
		Patient:             *converter.PatientProfileToResponse(patient),
		RecentPrescriptions: summaries,
		RecentMedicines:     converter.PrescriptionLinesToResponses(recentLines),
	}, nil
}
