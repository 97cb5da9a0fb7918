package service

import (
	"github.com/deppfellow/activity-api/internal/lib/token"
	"github.com/deppfellow/activity-api/internal/repository"
	"github.com/deppfellow/activity-api/internal/server"
)

type Services struct {
	Auth     *AuthService
	Activity *ActivityService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	signer := token.NewSigner(s.Config.Auth.SecretKey, s.Config.Auth.Issuer, s.Config.Auth.TokenTTL)

	return &Services{
		Auth:     NewAuthService(s, repos.Users, signer),
		Activity: NewActivityService(s, repos.Activities),
	}, nil
}
