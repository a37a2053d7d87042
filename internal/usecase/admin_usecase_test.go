package usecase

import (
	"context"
	"testing"
	"time"

	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminUsecase(t *testing.T) (AdminUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewAdminUsecase(db, newTestLogger(),
		repository.NewUserRepository(),
		repository.NewDoctorProfileRepository(),
		repository.NewPatientProfileRepository(),
		repository.NewMedicineRepository(),
		repository.NewApplicationRepository(),
		repository.NewRefillRequestRepository())
	return uc, db
}

func TestAdminSummary(t *testing.T) {
	t.Parallel()
	uc, db := newAdminUsecase(t)

	seedPatient(t, db, "pat1")
	seedPatient(t, db, "pat2")
	seedDoctor(t, db, "doc1")
	seedMedicine(t, db, "Napa", 10, time.Now().AddDate(1, 0, 0), entity.MedicineStatusActive)
	require.NoError(t, db.Create(&entity.DoctorApplication{
		DoctorID:     "doc9",
		FullName:     "Applicant",
		Email:        "doc9@example.com",
		PasswordHash: "x",
		BMDCNumber:   "BMDC-9",
		Status:       entity.ApplicationStatusPending,
	}).Error)
	require.NoError(t, db.Create(&entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusPending}).Error)
	require.NoError(t, db.Create(&entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusApproved}).Error)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Doctors)
	assert.Equal(t, int64(2), resp.Patients)
	assert.Equal(t, int64(1), resp.Medicines)
	assert.Equal(t, int64(1), resp.PendingApplications)
	assert.Equal(t, int64(1), resp.PendingRequests)
}

func TestRemoveDoctor(t *testing.T) {
	t.Parallel()
	uc, db := newAdminUsecase(t)
	seedDoctor(t, db, "doc1")

	ctx := context.Background()
	require.NoError(t, uc.RemoveDoctor(ctx, "doc1"))

	// The credential row stays but flips inactive.
	var user entity.User
	require.NoError(t, db.First(&user, "user_id = ?", "doc1").Error)
	assert.False(t, user.Active())

	var count int64
	require.NoError(t, db.Model(&entity.DoctorProfile{}).Where("user_id = ?", "doc1").Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, uc.RemoveDoctor(ctx, "doc1"), ErrDoctorNotFound)
	assert.ErrorIs(t, uc.RemoveDoctor(ctx, "ghost"), ErrDoctorNotFound)
}

func TestRemovePatient(t *testing.T) {
	t.Parallel()
	uc, db := newAdminUsecase(t)
	seedPatient(t, db, "pat1")

	ctx := context.Background()
	require.NoError(t, uc.RemovePatient(ctx, "pat1"))

	var user entity.User
	require.NoError(t, db.First(&user, "user_id = ?", "pat1").Error)
	assert.False(t, user.Active())

	assert.ErrorIs(t, uc.RemovePatient(ctx, "pat1"), ErrPatientNotFound)
}

func TestListDoctorsSkipsRemoved(t *testing.T) {
	t.Parallel()
	uc, db := newAdminUsecase(t)
	seedDoctor(t, db, "doc1")
	seedDoctor(t, db, "doc2")

	ctx := context.Background()
	require.NoError(t, uc.RemoveDoctor(ctx, "doc2"))

	resp, err := uc.ListDoctors(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "doc1", resp.Doctors[0].UserID)
}

func TestListPatientsSkipsDeactivated(t *testing.T) {
	t.Parallel()
	uc, db := newAdminUsecase(t)
	seedPatient(t, db, "pat1")
	seedPatient(t, db, "pat2")
	require.NoError(t, db.Model(&entity.User{}).Where("user_id = ?", "pat2").Update("is_active", false).Error)

	resp, err := uc.ListPatients(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "pat1", resp.Patients[0].UserID)
}
