package usecase

import (
	"errors"
	"time"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/domain"
	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/repository"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorNotApproved = errors.New("doctor is not available for consultations")
)

type BookRequest struct {
	DoctorID    string    `json:"doctorId" binding:"required"`
	ChildName   string    `json:"childName" binding:"required"`
	Concern     string    `json:"concern" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

type ConsultationUsecase interface {
	Book(parentID string, req *BookRequest) (*domain.Consultation, error)
	ListForParent(parentID string) ([]domain.Consultation, error)
	ApprovedDoctors() ([]authdomain.Doctor, error)
}

type consultationUsecase struct {
	consultationRepo repository.ConsultationRepository
	doctorRepo       authrepo.DoctorRepository
}

func NewConsultationUsecase(consultationRepo repository.ConsultationRepository, doctorRepo authrepo.DoctorRepository) ConsultationUsecase {
	return &consultationUsecase{
		consultationRepo: consultationRepo,
		doctorRepo:       doctorRepo,
	}
}

// Book creates a consultation request against an approved doctor.
func (u *consultationUsecase) Book(parentID string, req *BookRequest) (*domain.Consultation, error) {
	doctor, err := u.doctorRepo.FindByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.Status != authdomain.DoctorStatusApproved {
		return nil, ErrDoctorNotApproved
	}

	consultation := &domain.Consultation{
		ParentID:    parentID,
		DoctorID:    doctor.ID,
		ChildName:   req.ChildName,
		Concern:     req.Concern,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.ConsultationRequested,
	}
	if err := u.consultationRepo.Create(consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (u *consultationUsecase) ListForParent(parentID string) ([]domain.Consultation, error) {
	return u.consultationRepo.FindByParent(parentID)
}

// ApprovedDoctors backs the public doctor directory. Password hashes are
// already excluded by the domain's json tags.
func (u *consultationUsecase) ApprovedDoctors() ([]authdomain.Doctor, error) {
	return u.doctorRepo.ListByStatus(authdomain.DoctorStatusApproved)
}
