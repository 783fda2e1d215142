package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authdto "github.com/suryaprakash0010/InfantCareCompass/internal/auth/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/auth/repository"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	github     GithubProvider
	config     *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, doctorRepo repository.DoctorRepository, github GithubProvider, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		github:     github,
		config:     cfg,
	}
}

// SignIn verifies credentials against the store implied by the requested
// role and returns the identity snapshot plus a signed token.
func (u *authUsecase) SignIn(req *authdto.SignInRequest) (*authdto.AuthData, string, error) {
	role, err := authdomain.ParseRole(req.Role)
	if err != nil {
		return nil, "", err
	}

	var data *authdto.AuthData

	switch role {
	case authdomain.RoleDoctor:
		doctor, err := u.doctorRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, "", err
		}
		if doctor == nil || !repository.CheckPasswordHash(req.Password, doctor.Password) {
			return nil, "", ErrInvalidCredentials
		}
		data = authdto.DoctorData(doctor)

	case authdomain.RoleUser, authdomain.RoleAdmin:
		user, err := u.userRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, "", err
		}
		if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
			return nil, "", ErrInvalidCredentials
		}
		// Admin sign-in uses the same store but only succeeds for accounts
		// whose stored role really is ADMIN.
		if role == authdomain.RoleAdmin && user.Role != authdomain.RoleAdmin {
			return nil, "", ErrInvalidCredentials
		}
		data = authdto.UserData(user, role)
	}

	token, err := u.IssueToken(data.ID, data.Email, data.Role)
	if err != nil {
		return nil, "", err
	}
	return data, token, nil
}

func (u *authUsecase) SignUp(req *authdto.SignUpRequest) (*authdto.AuthData, error) {
	role, err := authdomain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	switch role {
	case authdomain.RoleDoctor:
		if req.FirstName == "" || req.LastName == "" {
			return nil, fmt.Errorf("firstName and lastName are required for doctor registration")
		}
		existing, err := u.doctorRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		doctor := &authdomain.Doctor{
			Email:              req.Email,
			Password:           hashed,
			FirstName:          req.FirstName,
			LastName:           req.LastName,
			Specialization:     req.Specialization,
			ExperienceYears:    req.ExperienceYears,
			RegistrationNumber: req.RegistrationNumber,
			Status:             authdomain.DoctorStatusPending,
		}
		if err := u.doctorRepo.Create(doctor); err != nil {
			return nil, err
		}
		return authdto.DoctorData(doctor), nil

	case authdomain.RoleUser:
		existing, err := u.userRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user := &authdomain.User{
			Email:    req.Email,
			Password: hashed,
			Role:     authdomain.RoleUser,
			KidName:  req.KidName,
			Status:   authdomain.UserStatusActive,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
		return authdto.UserData(user, authdomain.RoleUser), nil
	}

	return nil, authdomain.ErrUnknownRole
}

// IssueToken mints an HS256 token carrying identity and role, expiring
// JWTExpiry (8h by default) after issuance. There is no refresh mechanism;
// expiry forces re-authentication.
func (u *authUsecase) IssueToken(id, email string, role authdomain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   now.Add(u.config.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ValidateToken checks signature and expiry and extracts the principal. It
// is the single verification path behind both the session middleware and
// the role gate.
func (u *authUsecase) ValidateToken(raw string) (*authdomain.Principal, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	if id == "" || roleStr == "" {
		return nil, ErrInvalidToken
	}

	role, err := authdomain.ParseRole(roleStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &authdomain.Principal{UserID: id, Email: email, Role: role}, nil
}

// CurrentUser loads the full identity record for /user/me; the middleware
// only carries the (id, role) tuple.
func (u *authUsecase) CurrentUser(principal *authdomain.Principal) (*authdto.AuthData, error) {
	switch principal.Role {
	case authdomain.RoleDoctor:
		doctor, err := u.doctorRepo.FindByID(principal.UserID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrIdentityNotFound
		}
		return authdto.DoctorData(doctor), nil
	default:
		user, err := u.userRepo.FindByID(principal.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrIdentityNotFound
		}
		return authdto.UserData(user, principal.Role), nil
	}
}
