package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/activity-api/internal/config"
	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/deppfellow/activity-api/internal/lib/token"
	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/repository"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/storeerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Auth: config.AuthConfig{
			SecretKey: "test-secret",
			Issuer:    "activity-api",
			TokenTTL:  time.Hour,
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	services, err := NewServices(s, repository.NewRepositories(s))
	require.NoError(t, err)
	return services
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	return httpErr.Status
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	summary, err := svc.Auth.Register(ctx, &user.RegisterRequest{Username: "budi", Password: "rahasia", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, user.Summary{ID: 1, Username: "budi", Role: user.RoleStudent}, summary)
	assert.Equal(t, 1, svc.Auth.UserCount())

	stored, err := svc.Auth.users.FindByUsername(ctx, "budi")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", stored.PasswordHash)
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Auth.Register(context.Background(), &user.RegisterRequest{Username: "x", Password: "y", Role: "dosen"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	assert.Equal(t, 0, svc.Auth.UserCount())
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Auth.Register(ctx, &user.RegisterRequest{Username: "admin", Password: "pw", Role: user.RoleAdmin})
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &user.LoginRequest{Username: "nobody", Password: "pw"})
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		assert.EqualError(t, err, "User not found")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &user.LoginRequest{Username: "admin", Password: "nope"})
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		assert.EqualError(t, err, "Wrong password")
	})

	t.Run("success", func(t *testing.T) {
		signed, err := svc.Auth.Login(ctx, &user.LoginRequest{Username: "admin", Password: "pw"})
		require.NoError(t, err)

		claims, err := svc.Auth.Authenticate(signed)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, string(user.RoleAdmin), claims.Role)
		assert.Equal(t, int64(3600), svc.Auth.TokenTTLSeconds())
	})
}

func TestActivityService_CreateUpdateJoin(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	joinedAt := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	svc.Activity.now = func() time.Time { return joinedAt }

	created, err := svc.Activity.Create(ctx, &activity.CreateActivityRequest{
		Fields: activity.Fields{Title: "Seminar", Description: "AI", Date: "2026-11-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	student := &token.Claims{UserID: 2, Username: "budi", Role: string(user.RoleStudent)}
	joined, err := svc.Activity.Join(ctx, &activity.JoinActivityRequest{ID: "1"}, student)
	require.NoError(t, err)
	require.Len(t, joined.Participants, 1)
	assert.Equal(t, activity.Participant{UserID: 2, Username: "budi", JoinedAt: joinedAt}, joined.Participants[0])

	_, err = svc.Activity.Join(ctx, &activity.JoinActivityRequest{ID: "1"}, student)
	assert.Equal(t, storeerr.AlreadyExists, storeerr.ErrCode(err))

	updated, err := svc.Activity.Update(ctx, &activity.UpdateActivityRequest{
		ID:     "1",
		Fields: activity.Fields{Title: "Workshop", Description: "Go", Date: "2026-12-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Workshop", updated.Title)
	assert.Len(t, updated.Participants, 1)

	list, err := svc.Activity.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, svc.Activity.Count())
}

func TestActivityService_NonNumericIDIsNotFound(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Activity.Update(ctx, &activity.UpdateActivityRequest{ID: "abc"})
	assert.Equal(t, storeerr.NotFound, storeerr.ErrCode(err))

	_, err = svc.Activity.Join(ctx, &activity.JoinActivityRequest{ID: ""}, &token.Claims{UserID: 1})
	assert.Equal(t, storeerr.NotFound, storeerr.ErrCode(err))
}
