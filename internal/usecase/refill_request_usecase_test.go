package usecase

import (
	"context"
	"testing"
	"time"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRequestUsecase(t *testing.T) (RefillRequestUsecase, RefillCartUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cartRepo := repository.NewRefillCartRepository()
	requestUC := NewRefillRequestUsecase(db, newTestLogger(),
		repository.NewRefillRequestRepository(),
		cartRepo,
		repository.NewMedicineRepository())
	cartUC := NewRefillCartUsecase(db, newTestLogger(),
		cartRepo,
		repository.NewPrescriptionRepository())
	return requestUC, cartUC, db
}

func TestSubmitEmptyCart(t *testing.T) {
	t.Parallel()
	uc, _, db := newRequestUsecase(t)
	seedPatient(t, db, "pat1")

	ctx := sessionCtx("pat1", entity.RolePatient)
	_, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.RefillRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitSnapshotsAndClearsCart(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	medicine := seedMedicine(t, db, "Napa", 50, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)
	require.NoError(t, db.Model(medicine).Update("price", decimal.NewFromFloat(2.50)).Error)
	linked := seedRefillableLine(t, db, "pat1", "doc1", &medicine.ID, "5 days")
	custom := seedRefillableLine(t, db, "pat1", "doc1", nil, "1 week")

	ctx := sessionCtx("pat1", entity.RolePatient)
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: linked.ID, Quantity: 4}))
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: custom.ID, Quantity: 1}))

	resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{
		Address:        "123 Street",
		Notes:          "leave at the door",
		DeliveryMethod: "courier",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.RequestID)

	var request entity.RefillRequest
	require.NoError(t, db.First(&request, resp.RequestID).Error)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, "123 Street", request.Address)

	var items []entity.RefillRequestItem
	require.NoError(t, db.Where("request_id = ?", resp.RequestID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)

	linkedItem, customItem := items[0], items[1]
	if linkedItem.PrescriptionMedicineID != linked.ID {
		linkedItem, customItem = customItem, linkedItem
	}
	assert.Equal(t, 4, linkedItem.Quantity)
	assert.True(t, linkedItem.UnitPrice.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, linkedItem.TotalPrice.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, customItem.UnitPrice.IsZero())
	assert.True(t, customItem.TotalPrice.IsZero())

	// The cart is emptied in the same transaction.
	var cartCount int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("patient_id = ?", "pat1").Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestApproveAndDecline(t *testing.T) {
	t.Parallel()
	uc, _, db := newRequestUsecase(t)
	seedPatient(t, db, "pat1")

	request := &entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusPending}
	require.NoError(t, db.Create(request).Error)

	ctx := context.Background()
	require.NoError(t, uc.Approve(ctx, request.ID))

	var stored entity.RefillRequest
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, entity.RequestStatusApproved, stored.Status)

	require.NoError(t, uc.Decline(ctx, request.ID))
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, entity.RequestStatusDeclined, stored.Status)

	assert.ErrorIs(t, uc.Approve(ctx, 9999), ErrRequestNotFound)
	assert.ErrorIs(t, uc.Decline(ctx, 9999), ErrRequestNotFound)
}

func TestMarkDelivered(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	medicine := seedMedicine(t, db, "Napa", 10, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)
	line := seedRefillableLine(t, db, "pat1", "doc1", &medicine.ID, "5 days")

	ctx := sessionCtx("pat1", entity.RolePatient)
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: line.ID, Quantity: 3}))
	resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
	require.NoError(t, err)

	// Pending requests cannot be delivered.
	assert.ErrorIs(t, uc.MarkDelivered(ctx, resp.RequestID), ErrDeliveryNotAllowed)

	require.NoError(t, uc.Approve(ctx, resp.RequestID))
	require.NoError(t, uc.MarkDelivered(ctx, resp.RequestID))

	var stored entity.Medicine
	require.NoError(t, db.First(&stored, medicine.ID).Error)
	assert.Equal(t, 7, stored.Quantity)

	var request entity.RefillRequest
	require.NoError(t, db.First(&request, resp.RequestID).Error)
	assert.Equal(t, entity.RequestStatusDelivered, request.Status)

	// A second delivery is rejected and does not decrement again.
	assert.ErrorIs(t, uc.MarkDelivered(ctx, resp.RequestID), ErrDeliveryNotAllowed)
	require.NoError(t, db.First(&stored, medicine.ID).Error)
	assert.Equal(t, 7, stored.Quantity)
}

func TestMarkDeliveredAccumulatesAcrossRequests(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedPatient(t, db, "pat2")
	seedDoctor(t, db, "doc1")
	medicine := seedMedicine(t, db, "Napa", 20, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)

	// Two patients each submit a request against the same medicine.
	var requestIDs []uint
	for _, patientID := range []string{"pat1", "pat2"} {
		line := seedRefillableLine(t, db, patientID, "doc1", &medicine.ID, "5 days")
		ctx := sessionCtx(patientID, entity.RolePatient)
		require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: line.ID, Quantity: 4}))
		resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
		require.NoError(t, err)
		require.NoError(t, uc.Approve(ctx, resp.RequestID))
		requestIDs = append(requestIDs, resp.RequestID)
	}

	ctx := context.Background()
	for _, id := range requestIDs {
		require.NoError(t, uc.MarkDelivered(ctx, id))
	}

	// Both decrements land; neither delivery overwrites the other.
	var stored entity.Medicine
	require.NoError(t, db.First(&stored, medicine.ID).Error)
	assert.Equal(t, 12, stored.Quantity)
}

func TestMarkDeliveredFloorsStockAtZero(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	medicine := seedMedicine(t, db, "Napa", 2, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)
	line := seedRefillableLine(t, db, "pat1", "doc1", &medicine.ID, "5 days")

	ctx := sessionCtx("pat1", entity.RolePatient)
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: line.ID, Quantity: 5}))
	resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
	require.NoError(t, err)

	require.NoError(t, uc.Approve(ctx, resp.RequestID))
	require.NoError(t, uc.MarkDelivered(ctx, resp.RequestID))

	var stored entity.Medicine
	require.NoError(t, db.First(&stored, medicine.ID).Error)
	assert.Equal(t, 0, stored.Quantity)
}

func TestMarkDeliveredSkipsCustomLines(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	line := seedRefillableLine(t, db, "pat1", "doc1", nil, "5 days")

	ctx := sessionCtx("pat1", entity.RolePatient)
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: line.ID, Quantity: 2}))
	resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
	require.NoError(t, err)

	require.NoError(t, uc.Approve(ctx, resp.RequestID))
	require.NoError(t, uc.MarkDelivered(ctx, resp.RequestID))
}

func TestArchiveFinished(t *testing.T) {
	t.Parallel()
	uc, _, db := newRequestUsecase(t)
	seedPatient(t, db, "pat1")

	pending := &entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusPending}
	delivered := &entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusDelivered}
	declined := &entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusDeclined}
	for _, r := range []*entity.RefillRequest{pending, delivered, declined} {
		require.NoError(t, db.Create(r).Error)
	}

	ctx := context.Background()
	archived, err := uc.ArchiveFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, archived)

	var remaining []entity.RefillRequest
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, pending.ID, remaining[0].ID)

	var history []entity.RefillRequestHistory
	require.NoError(t, db.Order("request_id").Find(&history).Error)
	require.Len(t, history, 2)
	assert.Equal(t, delivered.ID, history[0].RequestID)
	assert.Equal(t, declined.ID, history[1].RequestID)

	// Nothing finished left, so the second run archives zero.
	archived, err = uc.ArchiveFinished(ctx)
	require.NoError(t, err)
	assert.Zero(t, archived)

	resp, err := uc.ListHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestArchiveFinishedRemovesItemRows(t *testing.T) {
	t.Parallel()
	uc, cartUC, db := newRequestUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	medicine := seedMedicine(t, db, "Napa", 50, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)
	line := seedRefillableLine(t, db, "pat1", "doc1", &medicine.ID, "5 days")

	ctx := sessionCtx("pat1", entity.RolePatient)
	require.NoError(t, cartUC.AddToCart(ctx, &dto.AddToCartRequest{PrescriptionMedicineID: line.ID, Quantity: 2}))
	resp, err := uc.Submit(ctx, &dto.SubmitRefillRequest{Address: "123 Street"})
	require.NoError(t, err)
	require.NoError(t, uc.Decline(ctx, resp.RequestID))

	archived, err := uc.ArchiveFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)

	// Both the request and its item rows are gone; only the history
	// pointer remains.
	var requestCount, itemCount, historyCount int64
	require.NoError(t, db.Model(&entity.RefillRequest{}).Where("id = ?", resp.RequestID).Count(&requestCount).Error)
	require.NoError(t, db.Model(&entity.RefillRequestItem{}).Where("request_id = ?", resp.RequestID).Count(&itemCount).Error)
	require.NoError(t, db.Model(&entity.RefillRequestHistory{}).Where("request_id = ?", resp.RequestID).Count(&historyCount).Error)
	assert.Zero(t, requestCount)
	assert.Zero(t, itemCount)
	assert.EqualValues(t, 1, historyCount)
}

func TestListByStatusFilter(t *testing.T) {
	t.Parallel()
	uc, _, db := newRequestUsecase(t)
	seedPatient(t, db, "pat1")

	for _, status := range []entity.RequestStatus{
		entity.RequestStatusPending,
		entity.RequestStatusPending,
		entity.RequestStatusApproved,
	} {
		require.NoError(t, db.Create(&entity.RefillRequest{PatientID: "pat1", Status: status}).Error)
	}

	ctx := context.Background()
	resp, err := uc.List(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestGetMineScopedToPatient(t *testing.T) {
	t.Parallel()
	uc, _, db := newRequestUsecase(t)
	seedPatient(t, db, "pat1")
	seedPatient(t, db, "pat2")

	request := &entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusPending}
	require.NoError(t, db.Create(request).Error)

	_, err := uc.GetMine(sessionCtx("pat2", entity.RolePatient), request.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	resp, err := uc.GetMine(sessionCtx("pat1", entity.RolePatient), request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, resp.ID)
}
