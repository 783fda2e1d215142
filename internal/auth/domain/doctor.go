package domain

import "time"

// Doctor is a medical-professional account. New registrations start in
// pending until an admin reviews them; only approved doctors are listed to
// parents.
type Doctor struct {
	ID                 string       `json:"id" gorm:"primaryKey"`
	Email              string       `json:"email" gorm:"uniqueIndex;not null"`
	Password           string       `json:"-"` // bcrypt hash, never serialized
	FirstName          string       `json:"firstName"`
	LastName           string       `json:"lastName"`
	Specialization     string       `json:"specialization,omitempty"`
	ExperienceYears    int          `json:"experienceYears,omitempty"`
	RegistrationNumber string       `json:"registrationNumber,omitempty"`
	Status             DoctorStatus `json:"status" gorm:"default:pending"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type DoctorStatus string

const (
	DoctorStatusPending  DoctorStatus = "pending"
	DoctorStatusApproved DoctorStatus = "approved"
	DoctorStatusRejected DoctorStatus = "rejected"
)

func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorStatusPending, DoctorStatusApproved, DoctorStatusRejected:
		return true
	}
	return false
}
