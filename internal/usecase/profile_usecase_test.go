package usecase

import (
	"strings"
	"testing"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPatientProfileUsecase(t *testing.T) (PatientProfileUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewPatientProfileUsecase(db, newTestLogger(),
		repository.NewPatientProfileRepository(),
		repository.NewPrescriptionRepository(),
		repository.NewRefillRequestRepository(),
		repository.NewRefillCartRepository(),
		fakeFileStore{})
	return uc, db
}

func newDoctorProfileUsecase(t *testing.T) (DoctorProfileUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewDoctorProfileUsecase(db, newTestLogger(),
		repository.NewDoctorProfileRepository(),
		fakeFileStore{})
	return uc, db
}

func TestPatientProfileUpdatePartial(t *testing.T) {
	t.Parallel()
	uc, db := newPatientProfileUsecase(t)
	seedPatient(t, db, "pat1")

	ctx := sessionCtx("pat1", entity.RolePatient)
	name := "Renamed Patient"
	allergies := "penicillin"
	resp, err := uc.UpdateMine(ctx, &dto.UpdatePatientProfileRequest{
		FullName:  &name,
		Allergies: &allergies,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Patient", resp.FullName)
	assert.Equal(t, "penicillin", resp.Allergies)

	// Absent fields are left untouched.
	var profile entity.PatientProfile
	require.NoError(t, db.First(&profile, "user_id = ?", "pat1").Error)
	assert.Equal(t, "Renamed Patient", profile.FullName)
}

func TestPatientProfileUpdateEmptyRequest(t *testing.T) {
	t.Parallel()
	uc, db := newPatientProfileUsecase(t)
	seedPatient(t, db, "pat1")

	resp, err := uc.UpdateMine(sessionCtx("pat1", entity.RolePatient), &dto.UpdatePatientProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Patient pat1", resp.FullName)
}

func TestPatientProfileUpdatePicture(t *testing.T) {
	t.Parallel()
	uc, db := newPatientProfileUsecase(t)
	seedPatient(t, db, "pat1")

	resp, err := uc.UpdatePicture(sessionCtx("pat1", entity.RolePatient), strings.NewReader("png"), "avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/profile_images/avatar.png", resp.ProfilePicturePath)
}

func TestPatientDashboardCounts(t *testing.T) {
	t.Parallel()
	uc, db := newPatientProfileUsecase(t)

	seedPatient(t, db, "pat1")
	seedDoctor(t, db, "doc1")
	line := seedRefillableLine(t, db, "pat1", "doc1", nil, "5 days")
	seedRefillableLine(t, db, "pat1", "doc1", nil, "1 week")
	require.NoError(t, db.Create(&entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusPending}).Error)
	require.NoError(t, db.Create(&entity.RefillRequest{PatientID: "pat1", Status: entity.RequestStatusDelivered}).Error)
	require.NoError(t, db.Create(&entity.CartItem{PatientID: "pat1", PrescriptionMedicineID: line.ID, Quantity: 1}).Error)

	resp, err := uc.Dashboard(sessionCtx("pat1", entity.RolePatient))
	require.NoError(t, err)
	assert.Equal(t, "Patient pat1", resp.FullName)
	assert.Equal(t, int64(2), resp.Prescriptions)
	assert.Equal(t, int64(1), resp.PendingRequests)
	assert.Equal(t, 1, resp.CartItems)
}

func TestDoctorProfileUpdate(t *testing.T) {
	t.Parallel()
	uc, db := newDoctorProfileUsecase(t)
	seedDoctor(t, db, "doc1")

	ctx := sessionCtx("doc1", entity.RoleDoctor)
	hospital := "Square Hospital"
	years := 12
	resp, err := uc.UpdateMine(ctx, &dto.UpdateDoctorProfileRequest{
		Hospital:        &hospital,
		ExperienceYears: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, "Square Hospital", resp.Hospital)
	assert.Equal(t, 12, resp.ExperienceYears)

	got, err := uc.GetMine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. doc1", got.FullName)
}

func TestDoctorProfileMissing(t *testing.T) {
	t.Parallel()
	uc, _ := newDoctorProfileUsecase(t)

	_, err := uc.GetMine(sessionCtx("ghost", entity.RoleDoctor))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
