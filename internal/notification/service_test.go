package notification

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

type recordingMailer struct {
	to      []string
	subject string
	body    string
	sent    int
}

func (m *recordingMailer) Send(to []string, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

func newTestNotification(t *testing.T) (*Service, *recordingMailer, authrepo.DoctorRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.Doctor{}))

	doctorRepo := authrepo.NewDoctorRepository(db)
	mail := &recordingMailer{}
	cfg := &config.Config{
		FrontendURL:  "http://localhost:5173",
		SupportEmail: "support@example.com",
	}
	return NewService(doctorRepo, mail, cfg), mail, doctorRepo
}

func TestContactUs_ForwardsToSupport(t *testing.T) {
	svc, mail, _ := newTestNotification(t)

	err := svc.ContactUs(&ContactUsRequest{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "How do I book a consultation?",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"support@example.com"}, mail.to)
	assert.Contains(t, mail.subject, "Priya")
	assert.Contains(t, mail.body, "priya@example.com")
	assert.Contains(t, mail.body, "How do I book a consultation?")
}

func TestContactUs_NoSupportInbox(t *testing.T) {
	svc, mail, _ := newTestNotification(t)
	svc.config = &config.Config{FrontendURL: "http://localhost:5173"}

	err := svc.ContactUs(&ContactUsRequest{Name: "Priya", Email: "priya@example.com", Message: "hi"})
	require.ErrorIs(t, err, ErrSupportNotConfigured)
	assert.Zero(t, mail.sent)
}

func TestNotifyDoctor_SendsJoinLink(t *testing.T) {
	svc, mail, doctorRepo := newTestNotification(t)

	doctor := &authdomain.Doctor{Email: "doc@example.com", Password: "x", Status: authdomain.DoctorStatusApproved}
	require.NoError(t, doctorRepo.Create(doctor))

	err := svc.NotifyDoctor(&NotifyDoctorRequest{DoctorID: doctor.ID, ChannelName: "room-42"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc@example.com"}, mail.to)
	assert.Contains(t, mail.body, "http://localhost:5173/video-call/room-42")
}

func TestNotifyDoctor_UnknownDoctor(t *testing.T) {
	svc, mail, _ := newTestNotification(t)

	err := svc.NotifyDoctor(&NotifyDoctorRequest{DoctorID: "nonexistent", ChannelName: "room-42"})
	require.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Zero(t, mail.sent)
}
