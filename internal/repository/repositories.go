package repository

import (
	"github.com/deppfellow/activity-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users      *UserRepository
	Activities *ActivityRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(s.Logger),
		Activities: NewActivityRepository(s.Logger),
	}
}
