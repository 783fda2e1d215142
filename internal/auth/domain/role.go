package domain

import (
	"errors"
	"strings"
)

// Role is the closed set of account roles carried in tokens. The API accepts
// PARENTS as an alias for USER; it is normalized at the boundary and never
// stored or signed.
type Role string

const (
	RoleUser   Role = "USER"
	RoleDoctor Role = "DOCTOR"
	RoleAdmin  Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes a client-supplied role string to its canonical value.
func ParseRole(raw string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "USER", "PARENTS":
		return RoleUser, nil
	case "DOCTOR":
		return RoleDoctor, nil
	case "ADMIN":
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

// Equals compares roles case-insensitively, matching how tokens minted by
// older clients may carry lower-case role strings.
func (r Role) Equals(other string) bool {
	return strings.EqualFold(string(r), other)
}
