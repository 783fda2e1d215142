package usecase

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/repository"
)

func newTestConsultation(t *testing.T) (ConsultationUsecase, authrepo.DoctorRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.Doctor{}, &domain.Consultation{}))

	doctorRepo := authrepo.NewDoctorRepository(db)
	return NewConsultationUsecase(repository.NewConsultationRepository(db), doctorRepo), doctorRepo
}

func seedDoctor(t *testing.T, repo authrepo.DoctorRepository, status authdomain.DoctorStatus) *authdomain.Doctor {
	t.Helper()
	doctor := &authdomain.Doctor{
		Email:     "doc@example.com",
		Password:  "irrelevant",
		FirstName: "Asha",
		LastName:  "Rao",
		Status:    status,
	}
	require.NoError(t, repo.Create(doctor))
	return doctor
}

func bookReq(doctorID string) *BookRequest {
	return &BookRequest{
		DoctorID:    doctorID,
		ChildName:   "Mia",
		Concern:     "fever since yesterday",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}
}

func TestBook_WithApprovedDoctor(t *testing.T) {
	uc, doctorRepo := newTestConsultation(t)
	doctor := seedDoctor(t, doctorRepo, authdomain.DoctorStatusApproved)

	consultation, err := uc.Book("parent-1", bookReq(doctor.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultationRequested, consultation.Status)
	assert.Equal(t, "parent-1", consultation.ParentID)
	assert.Equal(t, doctor.ID, consultation.DoctorID)

	list, err := uc.ListForParent("parent-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBook_UnknownDoctor(t *testing.T) {
	uc, _ := newTestConsultation(t)

	_, err := uc.Book("parent-1", bookReq("nonexistent"))
	require.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBook_PendingDoctorRejected(t *testing.T) {
	uc, doctorRepo := newTestConsultation(t)
	doctor := seedDoctor(t, doctorRepo, authdomain.DoctorStatusPending)

	_, err := uc.Book("parent-1", bookReq(doctor.ID))
	require.ErrorIs(t, err, ErrDoctorNotApproved)
}

func TestApprovedDoctors_FiltersByStatus(t *testing.T) {
	uc, doctorRepo := newTestConsultation(t)
	seedDoctor(t, doctorRepo, authdomain.DoctorStatusApproved)

	pending := &authdomain.Doctor{
		Email:    "pending@example.com",
		Password: "irrelevant",
		Status:   authdomain.DoctorStatusPending,
	}
	require.NoError(t, doctorRepo.Create(pending))

	doctors, err := uc.ApprovedDoctors()
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, authdomain.DoctorStatusApproved, doctors[0].Status)
}

func TestListForParent_ScopedToParent(t *testing.T) {
	uc, doctorRepo := newTestConsultation(t)
	doctor := seedDoctor(t, doctorRepo, authdomain.DoctorStatusApproved)

	_, err := uc.Book("parent-1", bookReq(doctor.ID))
	require.NoError(t, err)

	list, err := uc.ListForParent("parent-2")
	require.NoError(t, err)
	assert.Empty(t, list)
}
