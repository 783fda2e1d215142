package usecase

import (
	"context"

	authdomain "github.com/suryaprakash0010/InfantCareCompass/internal/auth/domain"
	authdto "github.com/suryaprakash0010/InfantCareCompass/internal/auth/dto"
	"github.com/suryaprakash0010/InfantCareCompass/pkg/githubauth"
)

// AuthUsecase is the authentication core: credential verification, token
// issuance/verification, registration, and the GitHub sign-in bridge.
type AuthUsecase interface {
	SignIn(req *authdto.SignInRequest) (*authdto.AuthData, string, error)
	SignUp(req *authdto.SignUpRequest) (*authdto.AuthData, error)

	IssueToken(id, email string, role authdomain.Role) (string, error)
	ValidateToken(raw string) (*authdomain.Principal, error)

	CurrentUser(principal *authdomain.Principal) (*authdto.AuthData, error)

	GithubAuthURL() string
	GithubSignIn(ctx context.Context, code string) (*authdto.AuthData, string, error)
}

// GithubProvider is the slice of the OAuth client the usecase needs;
// pkg/githubauth implements it, tests substitute a fake.
type GithubProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*githubauth.Profile, error)
}
