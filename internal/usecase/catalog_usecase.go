package usecase

import (
	"context"
	"errors"
	"time"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound    = errors.New("medicine not found in active catalog")
	ErrRefillEntryNotFound = errors.New("refill queue entry not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type CatalogUsecase interface {
	AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (*dto.MedicineResponse, error)
	ListActive(ctx context.Context) (*dto.MedicineListResponse, error)
	RetireExpiredOrDepleted(ctx context.Context) (int, error)
	RemoveManually(ctx context.Context, id uint) error
	Refill(ctx context.Context, id uint, req *dto.RefillMedicineRequest) error
	DeletePermanently(ctx context.Context, id uint) error
	ListRefillQueue(ctx context.Context) (*dto.RefillQueueListResponse, error)
}

type catalogUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	medicineRepo     repository.MedicineRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewCatalogUsecase(db *gorm.DB, log *logrus.Logger, medicineRepo repository.MedicineRepository, prescriptionRepo repository.PrescriptionRepository) CatalogUsecase {
	return &catalogUsecase{
		db:               db,
		log:              log,
		medicineRepo:     medicineRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// AddMedicine inserts a new active record. Duplicate names and batch numbers
// are permitted.
func (u *catalogUsecase) AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (*dto.MedicineResponse, error) {
	mfd, err := parseDate(req.Mfd)
	if err != nil {
		return nil, err
	}
	exp, err := parseDate(req.Exp)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		Name:        req.Name,
		Type:        req.Type,
		Strength:    req.Strength,
		GenericName: req.GenericName,
		BatchNo:     req.BatchNo,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Mfd:         mfd,
		Exp:         exp,
		Status:      entity.MedicineStatusActive,
	}

	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to add medicine %s: %+v", req.Name, err)
		return nil, err
	}

	u.log.Infof("Medicine added: %s (id=%d)", medicine.Name, medicine.ID)
	return converter.MedicineToResponse(medicine), nil
}

func (u *catalogUsecase) ListActive(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.ListActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active medicines: %+v", err)
		return nil, err
	}

	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

// RetireExpiredOrDepleted sweeps active rows that expired or ran out and
// moves them to the refill queue. Re-running once everything qualifying is
// already queued processes zero rows.
func (u *catalogUsecase) RetireExpiredOrDepleted(ctx context.Context) (int, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	today := time.Now().Truncate(24 * time.Hour)

	candidates, err := u.medicineRepo.ListActiveExpiredOrDepleted(tx, today)
	if err != nil {
		u.log.Warnf("Failed to scan for expired or depleted medicines: %+v", err)
		return 0, err
	}

	now := time.Now()
	processed := 0
	for i := range candidates {
		m := &candidates[i]
		// Expired wins when a row is both expired and depleted; only the
		// manual removal path ranks out_of_stock first.
		reason := entity.RefillReasonOutOfStock
		if !m.Exp.After(today) {
			reason = entity.RefillReasonExpired
		}

		rows, err := u.medicineRepo.MoveToRefill(tx, m.ID, reason, now)
		if err != nil {
			u.log.Warnf("Failed to move medicine %d to refill queue: %+v", m.ID, err)
			return 0, err
		}
		processed += int(rows)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit retire sweep: %+v", err)
		return 0, err
	}

	u.log.Infof("Retire sweep processed %d medicines", processed)
	return processed, nil
}

func (u *catalogUsecase) RemoveManually(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %d: %+v", id, err)
		return err
	}
	if medicine == nil || !medicine.IsActive() {
		return ErrMedicineNotFound
	}

	today := time.Now().Truncate(24 * time.Hour)
	reason := medicine.RemovalReason(today)

	rows, err := u.medicineRepo.MoveToRefill(db, id, reason, time.Now())
	if err != nil {
		u.log.Warnf("Failed to move medicine %d to refill queue: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrMedicineNotFound
	}

	u.log.Infof("Medicine %d moved to refill queue (%s)", id, reason)
	return nil
}

// Refill restocks a queued medicine back into the active catalog.
func (u *catalogUsecase) Refill(ctx context.Context, id uint, req *dto.RefillMedicineRequest) error {
	mfd, err := parseDate(req.Mfd)
	if err != nil {
		return err
	}
	exp, err := parseDate(req.Exp)
	if err != nil {
		return err
	}

	rows, err := u.medicineRepo.Restock(u.db.WithContext(ctx), id, req.Quantity, mfd, exp, req.Price)
	if err != nil {
		u.log.Warnf("Failed to restock medicine %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrRefillEntryNotFound
	}

	u.log.Infof("Medicine %d restocked (qty=%d)", id, req.Quantity)
	return nil
}

// DeletePermanently removes a queued medicine record for good. Prescription
// lines referencing it are detached first so the row delete never trips their
// foreign key; the lines survive and read as custom medicines afterwards.
func (u *catalogUsecase) DeletePermanently(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.DetachMedicine(tx, id); err != nil {
		u.log.Warnf("Failed to detach prescription lines of medicine %d: %+v", id, err)
		return err
	}

	rows, err := u.medicineRepo.DeleteRetired(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete medicine %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrRefillEntryNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit medicine deletion: %+v", err)
		return err
	}

	u.log.Infof("Medicine %d permanently deleted", id)
	return nil
}

func (u *catalogUsecase) ListRefillQueue(ctx context.Context) (*dto.RefillQueueListResponse, error) {
	medicines, err := u.medicineRepo.ListRefillQueue(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list refill queue: %+v", err)
		return nil, err
	}

	return &dto.RefillQueueListResponse{
		Items: converter.MedicinesToRefillQueueItems(medicines),
		Total: len(medicines),
	}, nil
}
