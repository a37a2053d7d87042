package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"mediscript-server/internal/converter"
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLineNotFound     = errors.New("prescription medicine not found")
	ErrNotRefillable    = errors.New("medicine is not refillable")
	ErrAlreadyInCart    = errors.New("medicine is already in the cart")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type RefillCartUsecase interface {
	AddToCart(ctx context.Context, req *dto.AddToCartRequest) error
	GetCart(ctx context.Context) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, cartID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID uint) error
	ClearCart(ctx context.Context) error
}

type refillCartUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cartRepo         repository.RefillCartRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewRefillCartUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cartRepo repository.RefillCartRepository,
	prescriptionRepo repository.PrescriptionRepository,
) RefillCartUsecase {
	return &refillCartUsecase{
		db:               db,
		log:              log,
		cartRepo:         cartRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

var durationIntRe = regexp.MustCompile(`\d+`)

// durationToDays parses strings like "5 days", "2 weeks", "1 month" into a
// day count. Week and month with no leading integer count as one unit.
// Anything else parses to zero.
func durationToDays(duration string) int {
	d := strings.ToLower(strings.TrimSpace(duration))
	if d == "" {
		return 0
	}

	n := 0
	if m := durationIntRe.FindString(d); m != "" {
		n, _ = strconv.Atoi(m)
	}

	switch {
	case strings.Contains(d, "month"):
		if n == 0 {
			n = 1
		}
		return n * 30
	case strings.Contains(d, "week"):
		if n == 0 {
			n = 1
		}
		return n * 7
	default:
		return n
	}
}

// CheckRefillable decides whether a prescription line may be staged for
// refill: the flag must be set and the duration must parse to a positive day
// count. The elapsed time since the prescription is not consulted; whether it
// should be is an open product question.
func CheckRefillable(line *entity.PrescriptionMedicine) bool {
	if !line.Refillable {
		return false
	}
	return durationToDays(line.Duration) > 0
}

func (u *refillCartUsecase) AddToCart(ctx context.Context, req *dto.AddToCartRequest) error {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	db := u.db.WithContext(ctx)

	line, err := u.prescriptionRepo.FindLineByID(db, req.PrescriptionMedicineID)
	if err != nil {
		u.log.Warnf("Failed to find prescription line %d: %+v", req.PrescriptionMedicineID, err)
		return err
	}
	if line == nil {
		return ErrLineNotFound
	}

	// The line must sit on one of the caller's own prescriptions.
	owned, err := u.prescriptionRepo.FindByIDForPatient(db, line.PrescriptionID, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to check prescription ownership: %+v", err)
		return err
	}
	if owned == nil {
		return ErrLineNotFound
	}

	if !CheckRefillable(line) {
		return ErrNotRefillable
	}

	existing, err := u.cartRepo.FindByPatientAndLine(db, session.UserID, req.PrescriptionMedicineID)
	if err != nil {
		u.log.Warnf("Failed to check cart for duplicate: %+v", err)
		return err
	}
	if existing != nil {
		return ErrAlreadyInCart
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := &entity.CartItem{
		PatientID:              session.UserID,
		PrescriptionMedicineID: req.PrescriptionMedicineID,
		Quantity:               quantity,
	}
	if err := u.cartRepo.Create(db, item); err != nil {
		u.log.Warnf("Failed to add cart item: %+v", err)
		return err
	}

	u.log.Infof("Cart item added: patient=%s line=%d qty=%d", session.UserID, req.PrescriptionMedicineID, quantity)
	return nil
}

func (u *refillCartUsecase) GetCart(ctx context.Context) (*dto.CartResponse, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	items, err := u.cartRepo.ListByPatient(u.db.WithContext(ctx), session.UserID)
	if err != nil {
		u.log.Warnf("Failed to list cart for %s: %+v", session.UserID, err)
		return nil, err
	}

	return converter.CartItemsToResponse(items), nil
}

// UpdateQuantity overwrites the staged quantity; zero or less removes the row.
func (u *refillCartUsecase) UpdateQuantity(ctx context.Context, cartID uint, quantity int) error {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	db := u.db.WithContext(ctx)

	if quantity <= 0 {
		if err := u.cartRepo.Delete(db, cartID, session.UserID); err != nil {
			u.log.Warnf("Failed to remove cart item %d: %+v", cartID, err)
			return err
		}
		return nil
	}

	rows, err := u.cartRepo.UpdateQuantity(db, cartID, session.UserID, quantity)
	if err != nil {
		u.log.Warnf("Failed to update cart item %d: %+v", cartID, err)
		return err
	}
	if rows == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (u *refillCartUsecase) RemoveItem(ctx context.Context, cartID uint) error {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	if err := u.cartRepo.Delete(u.db.WithContext(ctx), cartID, session.UserID); err != nil {
		u.log.Warnf("Failed to remove cart item %d: %+v", cartID, err)
		return err
	}
	return nil
}

func (u *refillCartUsecase) ClearCart(ctx context.Context) error {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	if err := u.cartRepo.DeleteByPatient(u.db.WithContext(ctx), session.UserID); err != nil {
		u.log.Warnf("Failed to clear cart for %s: %+v", session.UserID, err)
		return err
	}
	return nil
}
