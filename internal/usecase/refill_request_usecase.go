package usecase

import (
	"context"
	"errors"
	"time"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound    = errors.New("refill request not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrDeliveryNotAllowed = errors.New("request is not in approved state")
)

type RefillRequestUsecase interface {
	Submit(ctx context.Context, req *dto.SubmitRefillRequest) (*dto.SubmitRefillResponse, error)
	ListMine(ctx context.Context) (*dto.RefillRequestListResponse, error)
	GetMine(ctx context.Context, id uint) (*dto.RefillRequestResponse, error)
	List(ctx context.Context, status string) (*dto.RefillRequestListResponse, error)
	Get(ctx context.Context, id uint) (*dto.RefillRequestResponse, error)
	Approve(ctx context.Context, id uint) error
	Decline(ctx context.Context, id uint) error
	MarkDelivered(ctx context.Context, id uint) error
	ArchiveFinished(ctx context.Context) (int, error)
	ListHistory(ctx context.Context) (*dto.RequestHistoryListResponse, error)
}

type refillRequestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	requestRepo  repository.RefillRequestRepository
	cartRepo     repository.RefillCartRepository
	medicineRepo repository.MedicineRepository
}

func NewRefillRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.RefillRequestRepository,
	cartRepo repository.RefillCartRepository,
	medicineRepo repository.MedicineRepository,
) RefillRequestUsecase {
	return &refillRequestUsecase{
		db:           db,
		log:          log,
		requestRepo:  requestRepo,
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
	}
}

// Submit turns the caller's cart into a pending request. Request creation,
// item snapshotting and cart clearing are one transaction: the cart and the
// request never both hold the same items.
func (u *refillRequestUsecase) Submit(ctx context.Context, req *dto.SubmitRefillRequest) (*dto.SubmitRefillResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	items, err := u.cartRepo.ListByPatient(tx, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to list cart for %s: %+v", session.UserID, err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	request := &entity.RefillRequest{
		PatientID:      session.UserID,
		Address:        req.Address,
		Notes:          req.Notes,
		Status:         entity.RequestStatusPending,
		DeliveryMethod: req.DeliveryMethod,
	}
	if err := u.requestRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create refill request: %+v", err)
		return nil, err
	}

	for i := range items {
		unitPrice := converter.CartItemUnitPrice(&items[i])
		item := &entity.RefillRequestItem{
			RequestID:              request.ID,
			PrescriptionMedicineID: items[i].PrescriptionMedicineID,
			Quantity:               items[i].Quantity,
			UnitPrice:              unitPrice,
			TotalPrice:             unitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity))),
		}
		if err := u.requestRepo.CreateItem(tx, item); err != nil {
			u.log.Warnf("Failed to snapshot cart item %d: %+v", items[i].ID, err)
			return nil, err
		}
	}

	if err := u.cartRepo.DeleteByPatient(tx, session.UserID); err != nil {
		u.log.Warnf("Failed to clear cart for %s: %+v", session.UserID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit refill request: %+v", err)
		return nil, err
	}

	u.log.Infof("Refill request %d submitted by %s (%d items)", request.ID, session.UserID, len(items))
	return &dto.SubmitRefillResponse{RequestID: request.ID}, nil
}

func (u *refillRequestUsecase) ListMine(ctx context.Context) (*dto.RefillRequestListResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	requests, err := u.requestRepo.ListByPatient(u.db.WithContext(ctx), session.UserID)
	if err != nil {
		u.log.Warnf("Failed to list requests for %s: %+v", session.UserID, err)
		return nil, err
	}

	return &dto.RefillRequestListResponse{
		Requests: converter.RefillRequestsToResponses(requests, false),
		Total:    len(requests),
	}, nil
}

func (u *refillRequestUsecase) GetMine(ctx context.Context, id uint) (*dto.RefillRequestResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	request, err := u.requestRepo.FindByIDForPatient(u.db.WithContext(ctx), id, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find request %d: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	return converter.RefillRequestToResponse(request, true), nil
}

func (u *refillRequestUsecase) List(ctx context.Context, status string) (*dto.RefillRequestListResponse, error) {
	requests, err := u.requestRepo.List(u.db.WithContext(ctx), entity.RequestStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list refill requests: %+v", err)
		return nil, err
	}

	return &dto.RefillRequestListResponse{
		Requests: converter.RefillRequestsToResponses(requests, false),
		Total:    len(requests),
	}, nil
}

func (u *refillRequestUsecase) Get(ctx context.Context, id uint) (*dto.RefillRequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find request %d: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	return converter.RefillRequestToResponse(request, true), nil
}

func (u *refillRequestUsecase) Approve(ctx context.Context, id uint) error {
	return u.setStatus(ctx, id, entity.RequestStatusApproved)
}

func (u *refillRequestUsecase) Decline(ctx context.Context, id uint) error {
	return u.setStatus(ctx, id, entity.RequestStatusDeclined)
}

func (u *refillRequestUsecase) setStatus(ctx context.Context, id uint, status entity.RequestStatus) error {
	rows, err := u.requestRepo.UpdateStatus(u.db.WithContext(ctx), id, status)
	if err != nil {
		u.log.Warnf("Failed to set request %d to %s: %+v", id, status, err)
		return err
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	u.log.Infof("Refill request %d set to %s", id, status)
	return nil
}

// MarkDelivered flips the status and decrements inventory in one
// transaction. The status update only matches rows still in approved, so a
// second call cannot decrement twice: concurrent calls serialize on the row
// lock taken by the guarded UPDATE.
func (u *refillRequestUsecase) MarkDelivered(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.requestRepo.UpdateStatusFrom(tx, id, entity.RequestStatusApproved, entity.RequestStatusDelivered)
	if err != nil {
		u.log.Warnf("Failed to mark request %d delivered: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDeliveryNotAllowed
	}

	items, err := u.requestRepo.ListItems(tx, id)
	if err != nil {
		u.log.Warnf("Failed to list items for request %d: %+v", id, err)
		return err
	}

	for i := range items {
		line := &items[i].PrescriptionMedicine
		if line.MedicineID == nil {
			continue
		}
		if err := u.medicineRepo.DecrementQuantity(tx, *line.MedicineID, items[i].Quantity); err != nil {
			u.log.Warnf("Failed to decrement medicine %d: %+v", *line.MedicineID, err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit delivery of request %d: %+v", id, err)
		return err
	}

	u.log.Infof("Refill request %d delivered", id)
	return nil
}

// ArchiveFinished records a history pointer per delivered or declined
// request, then deletes those rows, all in one transaction. Item rows go
// first so the request delete never trips their foreign key. Nothing
// qualifying is a successful no-op.
func (u *refillRequestUsecase) ArchiveFinished(ctx context.Context) (int, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	finished, err := u.requestRepo.ListFinished(tx)
	if err != nil {
		u.log.Warnf("Failed to list finished requests: %+v", err)
		return 0, err
	}
	if len(finished) == 0 {
		if err := tx.Commit().Error; err != nil {
			return 0, err
		}
		return 0, nil
	}

	now := time.Now()
	for i := range finished {
		history := &entity.RefillRequestHistory{
			RequestID:  finished[i].ID,
			ArchivedAt: now,
		}
		if err := u.requestRepo.CreateHistory(tx, history); err != nil {
			u.log.Warnf("Failed to record history for request %d: %+v", finished[i].ID, err)
			return 0, err
		}
		if err := u.requestRepo.DeleteItems(tx, finished[i].ID); err != nil {
			u.log.Warnf("Failed to delete items of request %d: %+v", finished[i].ID, err)
			return 0, err
		}
	}

	if _, err := u.requestRepo.DeleteFinished(tx); err != nil {
		u.log.Warnf("Failed to delete archived requests: %+v", err)
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit archive: %+v", err)
		return 0, err
	}

	u.log.Infof("Archived %d refill requests", len(finished))
	return len(finished), nil
}

func (u *refillRequestUsecase) ListHistory(ctx context.Context) (*dto.RequestHistoryListResponse, error) {
	entries, err := u.requestRepo.ListHistory(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list request history: %+v", err)
		return nil, err
	}

	return &dto.RequestHistoryListResponse{
		Entries: converter.HistoryToResponses(entries),
		Total:   len(entries),
	}, nil
}
