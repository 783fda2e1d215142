package domain

import "time"

// User is a parent/guardian account. Admin accounts live in the same table
// with Role set to ADMIN; doctors have their own table (see doctor.go) and
// sign-in lookups are always scoped to exactly one of the two stores.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	Role      Role       `json:"role" gorm:"default:USER"`
	KidName   string     `json:"kidName,omitempty"`
	Status    UserStatus `json:"status" gorm:"default:active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}
