package usecase

import (
	"context"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authdto "github.com/suryaprakash0010/InfantCareCompass/internal/auth/dto"
)

// GithubAuthURL returns the provider authorize URL for the login redirect.
func (u *authUsecase) GithubAuthURL() string {
	return u.github.AuthCodeURL("")
}

// GithubSignIn exchanges the callback code, resolves the provider's primary
// verified email against the doctor store first and then the user store, and
// issues the same token shape as password sign-in. It never creates an
// account: an unmatched email returns ErrIdentityNotFound so the handler can
// redirect to registration.
func (u *authUsecase) GithubSignIn(ctx context.Context, code string) (*authdto.AuthData, string, error) {
	accessToken, err := u.github.Exchange(ctx, code)
	if err != nil {
		return nil, "", err
	}

	profile, err := u.github.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}

	var data *authdto.AuthData

	// Doctor accounts take precedence if an email were ever to exist in
	// both stores; per-store unique emails make that unlikely.
	doctor, err := u.doctorRepo.FindByEmail(profile.Email)
	if err != nil {
		return nil, "", err
	}
	if doctor != nil {
		data = authdto.DoctorData(doctor)
	} else {
		user, err := u.userRepo.FindByEmail(profile.Email)
		if err != nil {
			return nil, "", err
		}
		if user == nil {
			return nil, "", ErrIdentityNotFound
		}
		role := user.Role
		if role == "" {
			role = authdomain.RoleUser
		}
		data = authdto.UserData(user, role)
	}

	token, err := u.IssueToken(data.ID, data.Email, data.Role)
	if err != nil {
		return nil, "", err
	}
	return data, token, nil
}
