// Package notification sends the application's transactional email: the
// public contact form and the video-call invitation a parent triggers for a
// doctor.
package notification

import (
	"errors"
	"fmt"

	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/mailer"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrSupportNotConfigured = errors.New("support inbox is not configured")
)

type ContactUsRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type NotifyDoctorRequest struct {
	DoctorID    string `json:"doctorId" binding:"required"`
	ChannelName string `json:"channelName" binding:"required"`
}

type Service struct {
	doctorRepo authrepo.DoctorRepository
	mail       mailer.Mailer
	config     *config.Config
}

func NewService(doctorRepo authrepo.DoctorRepository, mail mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		mail:       mail,
		config:     cfg,
	}
}

// ContactUs forwards a visitor message to the support inbox.
func (s *Service) ContactUs(req *ContactUsRequest) error {
	if s.config.SupportEmail == "" {
		return ErrSupportNotConfigured
	}

	subject := fmt.Sprintf("Contact form: message from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	return s.mail.Send([]string{s.config.SupportEmail}, subject, body)
}

// NotifyDoctor emails a doctor the join link for an incoming video call.
func (s *Service) NotifyDoctor(req *NotifyDoctorRequest) error {
	doctor, err := s.doctorRepo.FindByID(req.DoctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	subject := "Video Call Invitation"
	body := fmt.Sprintf(
		"You have an incoming video call. Please join using the following link:\n%s/video-call/%s",
		s.config.FrontendURL, req.ChannelName,
	)
	return s.mail.Send([]string{doctor.Email}, subject, body)
}
