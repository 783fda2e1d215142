package dto

import authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// SignUpRequest registers either a parent or a doctor depending on Role.
// The doctor-only fields are validated in the usecase once the role is known.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`

	// parent fields
	KidName string `json:"kidName,omitempty"`

	// doctor fields
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Specialization     string `json:"specialization,omitempty"`
	ExperienceYears    int    `json:"experienceYears,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// AuthData is the role-specific identity snapshot echoed to clients after
// sign-in, sign-up, and /user/me. Doctor and parent fields are mutually
// exclusive.
type AuthData struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  authdomain.Role `json:"role"`

	KidName string `json:"kidName,omitempty"`

	FirstName string                  `json:"firstName,omitempty"`
	LastName  string                  `json:"lastName,omitempty"`
	Status    authdomain.DoctorStatus `json:"status,omitempty"`
}

func UserData(user *authdomain.User, role authdomain.Role) *AuthData {
	return &AuthData{
		ID:      user.ID,
		Email:   user.Email,
		Role:    role,
		KidName: user.KidName,
	}
}

func DoctorData(doctor *authdomain.Doctor) *AuthData {
	return &AuthData{
		ID:        doctor.ID,
		Email:     doctor.Email,
		Role:      authdomain.RoleDoctor,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
		Status:    doctor.Status,
	}
}
