package usecase

import (
	"errors"
	"time"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authrepo "github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	consultdomain "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/domain"
	consultrepo "github.com/suryaprakash0010/InfantCareCompass/internal/consultation/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidStatus  = errors.New("invalid status")
)

// Analytics is the admin dashboard summary.
type Analytics struct {
	Users struct {
		Total  int64 `json:"total"`
		Recent int64 `json:"recent"`
	} `json:"users"`
	Doctors struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Recent   int64 `json:"recent"`
	} `json:"doctors"`
	Consultations struct {
		Total     int64 `json:"total"`
		Requested int64 `json:"requested"`
		Completed int64 `json:"completed"`
	} `json:"consultations"`
}

type AdminUsecase interface {
	DashboardAnalytics() (*Analytics, error)
	ListUsers() ([]authdomain.User, error)
	ListDoctors() ([]authdomain.Doctor, error)
	UpdateUserStatus(userID string, status string) (*authdomain.User, error)
	ReviewDoctor(doctorID string, status string) (*authdomain.Doctor, error)
}

type adminUsecase struct {
	userRepo         authrepo.UserRepository
	doctorRepo       authrepo.DoctorRepository
	consultationRepo consultrepo.ConsultationRepository
}

func NewAdminUsecase(userRepo authrepo.UserRepository, doctorRepo authrepo.DoctorRepository, consultationRepo consultrepo.ConsultationRepository) AdminUsecase {
	return &adminUsecase{
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
		consultationRepo: consultationRepo,
	}
}

func (u *adminUsecase) DashboardAnalytics() (*Analytics, error) {
	var analytics Analytics
	var err error

	if analytics.Users.Total, err = u.userRepo.Count(); err != nil {
		return nil, err
	}
	if analytics.Doctors.Total, err = u.doctorRepo.Count(); err != nil {
		return nil, err
	}
	if analytics.Doctors.Pending, err = u.doctorRepo.CountByStatus(authdomain.DoctorStatusPending); err != nil {
		return nil, err
	}
	if analytics.Doctors.Approved, err = u.doctorRepo.CountByStatus(authdomain.DoctorStatusApproved); err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if analytics.Users.Recent, err = u.userRepo.CountCreatedSince(thirtyDaysAgo); err != nil {
		return nil, err
	}
	if analytics.Doctors.Recent, err = u.doctorRepo.CountCreatedSince(thirtyDaysAgo); err != nil {
		return nil, err
	}

	if analytics.Consultations.Total, err = u.consultationRepo.Count(); err != nil {
		return nil, err
	}
	if analytics.Consultations.Requested, err = u.consultationRepo.CountByStatus(consultdomain.ConsultationRequested); err != nil {
		return nil, err
	}
	if analytics.Consultations.Completed, err = u.consultationRepo.CountByStatus(consultdomain.ConsultationCompleted); err != nil {
		return nil, err
	}

	return &analytics, nil
}

func (u *adminUsecase) ListUsers() ([]authdomain.User, error) {
	return u.userRepo.List()
}

func (u *adminUsecase) ListDoctors() ([]authdomain.Doctor, error) {
	return u.doctorRepo.List()
}

func (u *adminUsecase) UpdateUserStatus(userID string, status string) (*authdomain.User, error) {
	userStatus := authdomain.UserStatus(status)
	if !userStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Status = userStatus
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ReviewDoctor resolves a pending registration to approved or rejected.
func (u *adminUsecase) ReviewDoctor(doctorID string, status string) (*authdomain.Doctor, error) {
	doctorStatus := authdomain.DoctorStatus(status)
	if doctorStatus != authdomain.DoctorStatusApproved && doctorStatus != authdomain.DoctorStatusRejected {
		return nil, ErrInvalidStatus
	}

	doctor, err := u.doctorRepo.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	doctor.Status = doctorStatus
	if err := u.doctorRepo.Update(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}
