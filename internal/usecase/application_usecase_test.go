package usecase

import (
	"context"
	"strings"
	"testing"

	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/repository"
	"mediscript-server/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationUsecase(t *testing.T) (ApplicationUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	uc := NewApplicationUsecase(db, newTestLogger(),
		repository.NewApplicationRepository(),
		repository.NewUserRepository(),
		repository.NewDoctorProfileRepository(),
		fakeFileStore{})
	return uc, db
}

func applyRequest(doctorID string) *dto.ApplyDoctorRequest {
	return &dto.ApplyDoctorRequest{
		DoctorID:        doctorID,
		FullName:        "Dr. Karim",
		Email:           doctorID + "@example.com",
		Password:        "secret123",
		Specialization:  "Cardiology",
		BMDCNumber:      "BMDC-" + doctorID,
		CurrentHospital: "City Hospital",
		ExperienceYears: 8,
	}
}

func TestApplyDoctor(t *testing.T) {
	t.Parallel()
	uc, db := newApplicationUsecase(t)
	ctx := context.Background()

	resp, err := uc.Apply(ctx, applyRequest("doc1"), strings.NewReader("pdf bytes"), "license.pdf")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ApplicationStatusPending), resp.Status)
	assert.Equal(t, "uploads/licenses/license.pdf", resp.LicensePDFPath)

	var app entity.DoctorApplication
	require.NoError(t, db.First(&app, "doctor_id = ?", "doc1").Error)
	assert.True(t, password.Compare(app.PasswordHash, "secret123"))

	// No user account exists until approval.
	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("user_id = ?", "doc1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyDoctorWithoutLicense(t *testing.T) {
	t.Parallel()
	uc, _ := newApplicationUsecase(t)

	resp, err := uc.Apply(context.Background(), applyRequest("doc1"), nil, "")
	require.NoError(t, err)
	assert.Empty(t, resp.LicensePDFPath)
}

func TestApplyDoctorConflict(t *testing.T) {
	t.Parallel()
	uc, _ := newApplicationUsecase(t)
	ctx := context.Background()

	_, err := uc.Apply(ctx, applyRequest("doc1"), nil, "")
	require.NoError(t, err)

	_, err = uc.Apply(ctx, applyRequest("doc1"), nil, "")
	assert.ErrorIs(t, err, ErrApplicationConflict)

	// A different id reusing the same email collides too.
	other := applyRequest("doc2")
	other.Email = "doc1@example.com"
	_, err = uc.Apply(ctx, other, nil, "")
	assert.ErrorIs(t, err, ErrApplicationConflict)
}

func TestApproveApplication(t *testing.T) {
	t.Parallel()
	uc, db := newApplicationUsecase(t)
	ctx := context.Background()

	_, err := uc.Apply(ctx, applyRequest("doc1"), nil, "")
	require.NoError(t, err)

	require.NoError(t, uc.Approve(ctx, "doc1"))

	var user entity.User
	require.NoError(t, db.First(&user, "user_id = ?", "doc1").Error)
	assert.Equal(t, entity.RoleDoctor, user.Role)
	assert.True(t, user.Active())
	// The applicant's password carries over unchanged.
	assert.True(t, password.Compare(user.PasswordHash, "secret123"))

	var profile entity.DoctorProfile
	require.NoError(t, db.First(&profile, "user_id = ?", "doc1").Error)
	assert.Equal(t, "Dr. Karim", profile.FullName)
	assert.Equal(t, "BMDC-doc1", profile.BMDCNumber)

	var app entity.DoctorApplication
	require.NoError(t, db.First(&app, "doctor_id = ?", "doc1").Error)
	assert.Equal(t, entity.ApplicationStatusApproved, app.Status)

	// Only pending applications can be approved.
	assert.ErrorIs(t, uc.Approve(ctx, "doc1"), ErrApplicationNotFound)
	assert.ErrorIs(t, uc.Approve(ctx, "ghost"), ErrApplicationNotFound)
}

func TestRejectApplication(t *testing.T) {
	t.Parallel()
	uc, db := newApplicationUsecase(t)
	ctx := context.Background()

	_, err := uc.Apply(ctx, applyRequest("doc1"), nil, "")
	require.NoError(t, err)

	require.NoError(t, uc.Reject(ctx, "doc1"))

	var app entity.DoctorApplication
	require.NoError(t, db.First(&app, "doctor_id = ?", "doc1").Error)
	assert.Equal(t, entity.ApplicationStatusRejected, app.Status)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("user_id = ?", "doc1").Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, uc.Reject(ctx, "ghost"), ErrApplicationNotFound)
}

func TestListPendingApplications(t *testing.T) {
	t.Parallel()
	uc, _ := newApplicationUsecase(t)
	ctx := context.Background()

	_, err := uc.Apply(ctx, applyRequest("doc1"), nil, "")
	require.NoError(t, err)
	_, err = uc.Apply(ctx, applyRequest("doc2"), nil, "")
	require.NoError(t, err)
	require.NoError(t, uc.Reject(ctx, "doc2"))

	resp, err := uc.ListPending(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "doc1", resp.Applications[0].DoctorID)
}
