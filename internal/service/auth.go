package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/deppfellow/activity-api/internal/lib/token"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/repository"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/storeerr"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 10

// AuthService registers users, checks credentials and verifies access tokens.
type AuthService struct {
	server *server.Server
	users  *repository.UserRepository
	signer *token.Signer
}

func NewAuthService(s *server.Server, users *repository.UserRepository, signer *token.Signer) *AuthService {
	return &AuthService{
		server: s,
		users:  users,
		signer: signer,
	}
}

// Register stores a new user with a hashed password.
func (a *AuthService) Register(ctx context.Context, req *user.RegisterRequest) (user.Summary, error) {
	if !req.Role.Valid() {
		return user.Summary{}, errs.NewBadRequestError(`Role must be "mahasiswa" or "admin"`, true, nil, nil, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		return user.Summary{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := a.users.Create(ctx, req.Username, string(hash), req.Role)
	if err != nil {
		return user.Summary{}, err
	}

	a.server.Logger.Info().
		Int("user_id", u.ID).
		Str("role", string(u.Role)).
		Msg("user registered")

	return u.Summary(), nil
}

// Login checks the credentials and returns a signed access token.
//
// An unknown username and a wrong password are both 400s with distinct
// messages.
func (a *AuthService) Login(ctx context.Context, req *user.LoginRequest) (string, error) {
	u, err := a.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if storeerr.ErrCode(err) == storeerr.NotFound {
			return "", errs.NewBadRequestError("User not found", true, nil, nil, nil)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", errs.NewBadRequestError("Wrong password", true, nil, nil, nil)
		}
		return "", fmt.Errorf("failed to compare password: %w", err)
	}

	signed, err := a.signer.Sign(u.ID, u.Username, string(u.Role))
	if err != nil {
		return "", err
	}

	a.server.Logger.Info().Int("user_id", u.ID).Msg("user logged in")

	return signed, nil
}

// Authenticate verifies an access token and returns its claims.
func (a *AuthService) Authenticate(tokenString string) (*token.Claims, error) {
	return a.signer.Parse(tokenString)
}

// TokenTTLSeconds is the lifetime of issued tokens in seconds.
func (a *AuthService) TokenTTLSeconds() int64 {
	return int64(a.signer.TTL().Seconds())
}

// UserCount returns the number of registered users.
func (a *AuthService) UserCount() int {
	return a.users.Count()
}
