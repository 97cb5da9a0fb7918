package repository

import (
	"context"
	"sync"

	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/storeerr"
	"github.com/rs/zerolog"
)

// UserRepository stores registered users in insertion order.
type UserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	nextID int
	logger *zerolog.Logger
}

// NewUserRepository creates an empty user collection.
func NewUserRepository(logger *zerolog.Logger) *UserRepository {
	return &UserRepository{
		nextID: 1,
		logger: logger,
	}
}

// Create appends a user and assigns it the next id.
// Usernames are not checked for uniqueness.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, role user.Role) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	r.nextID++
	r.users = append(r.users, u)

	r.logger.Debug().
		Int("user_id", u.ID).
		Str("role", string(u.Role)).
		Msg("user stored")

	return u, nil
}

// FindByUsername returns the first user registered under username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}

	return user.User{}, storeerr.NewNotFound("user", username)
}

// Count returns the number of registered users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
