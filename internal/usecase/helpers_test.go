package usecase

import (
	"context"
	"io"
	"sync"
	"testing"

	"mediscript-server/internal/delivery/http/middleware"
	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/service"
	"mediscript-server/pkg/password"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.PatientProfile{},
		&entity.DoctorProfile{},
		&entity.DoctorApplication{},
		&entity.Medicine{},
		&entity.Prescription{},
		&entity.PrescriptionTest{},
		&entity.PrescriptionMedicine{},
		&entity.CartItem{},
		&entity.RefillRequest{},
		&entity.RefillRequestItem{},
		&entity.RefillRequestHistory{},
		&entity.PasswordReset{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*service.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]*service.Session{}}
}

func (s *memorySessionStore) Create(_ context.Context, session *service.Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.sessions[token] = session
	return token, nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (*service.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token], nil
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// fakeMailer records outbound mail instead of sending it.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// fakeFileStore pretends to persist uploads.
type fakeFileStore struct{}

func (fakeFileStore) Save(subdir, originalName string, _ io.Reader) (string, error) {
	return "uploads/" + subdir + "/" + originalName, nil
}

func (fakeFileStore) Remove(string) error { return nil }

func sessionCtx(userID, role string) context.Context {
	return middleware.WithSession(context.Background(), &service.Session{
		UserID: userID,
		Role:   role,
		Email:  userID + "@example.com",
	})
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	return hash
}

func seedPatient(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	active := true
	require.NoError(t, db.Create(&entity.User{
		UserID:       userID,
		Email:        userID + "@example.com",
		PasswordHash: mustHash(t, "secret123"),
		Role:         entity.RolePatient,
		IsActive:     &active,
	}).Error)
	require.NoError(t, db.Create(&entity.PatientProfile{
		UserID:   userID,
		FullName: "Patient " + userID,
	}).Error)
}

// seedRefillableLine creates a prescription for the patient with a single
// refillable medicine line and returns that line.
func seedRefillableLine(t *testing.T, db *gorm.DB, patientID, doctorID string, medicineID *uint, duration string) *entity.PrescriptionMedicine {
	t.Helper()

	prescription := &entity.Prescription{
		PatientID: patientID,
		DoctorID:  doctorID,
		Diagnosis: "Seasonal flu",
	}
	require.NoError(t, db.Create(prescription).Error)

	line := &entity.PrescriptionMedicine{
		PrescriptionID: prescription.ID,
		MedicineID:     medicineID,
		Dosage:         "1+0+1",
		Duration:       duration,
		Refillable:     true,
	}
	require.NoError(t, db.Create(line).Error)
	return line
}

func seedDoctor(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	active := true
	require.NoError(t, db.Create(&entity.User{
		UserID:       userID,
		Email:        userID + "@example.com",
		PasswordHash: mustHash(t, "secret123"),
		Role:         entity.RoleDoctor,
		IsActive:     &active,
	}).Error)
	require.NoError(t, db.Create(&entity.DoctorProfile{
		UserID:   userID,
		FullName: "Dr. " + userID,
	}).Error)
}
