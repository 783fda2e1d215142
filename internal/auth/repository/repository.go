package repository

import (
	"time"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
)

// UserRepository is the parent/admin identity store.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	List() ([]authdomain.User, error)
	Count() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

// DoctorRepository is the doctor identity store.
type DoctorRepository interface {
	Create(doctor *authdomain.Doctor) error
	FindByEmail(email string) (*authdomain.Doctor, error)
	FindByID(id string) (*authdomain.Doctor, error)
	Update(doctor *authdomain.Doctor) error
	List() ([]authdomain.Doctor, error)
	ListByStatus(status authdomain.DoctorStatus) ([]authdomain.Doctor, error)
	Count() (int64, error)
	CountByStatus(status authdomain.DoctorStatus) (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}
