package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/storeerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func fields(title string) activity.Fields {
	return activity.Fields{Title: title, Description: "desc", Date: "2026-11-01"}
}

func TestUserRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(nopLogger())

	a, err := repo.Create(ctx, "a", "hash", user.RoleAdmin)
	require.NoError(t, err)
	b, err := repo.Create(ctx, "b", "hash", user.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestUserRepository_FindByUsernameReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(nopLogger())

	_, _ = repo.Create(ctx, "dup", "first", user.RoleAdmin)
	_, _ = repo.Create(ctx, "dup", "second", user.RoleStudent)

	u, err := repo.FindByUsername(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "first", u.PasswordHash)

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.Equal(t, storeerr.NotFound, storeerr.ErrCode(err))
}

func TestActivityRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())

	first, err := repo.Create(ctx, fields("one"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, fields("two"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.NotNil(t, first.Participants)
	assert.Empty(t, first.Participants)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Title)
	assert.Equal(t, "two", list[1].Title)
}

func TestActivityRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())
	created, _ := repo.Create(ctx, fields("one"))
	_, err := repo.AddParticipant(ctx, created.ID, activity.Participant{UserID: 5})
	require.NoError(t, err)

	list, _ := repo.List(ctx)
	list[0].Title = "mutated"
	list[0].Participants[0].UserID = 42

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", stored.Title)
	assert.Equal(t, 5, stored.Participants[0].UserID)
}

func TestActivityRepository_UpdateKeepsParticipants(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())
	created, _ := repo.Create(ctx, fields("old"))
	_, err := repo.AddParticipant(ctx, created.ID, activity.Participant{UserID: 3, Username: "siti"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, activity.Fields{Title: "new", Description: "d2", Date: "tomorrow"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "d2", updated.Description)
	assert.Equal(t, "tomorrow", updated.Date)
	require.Len(t, updated.Participants, 1)
	assert.Equal(t, "siti", updated.Participants[0].Username)
}

func TestActivityRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())

	_, err := repo.Update(ctx, 9, fields("x"))
	assert.True(t, errors.Is(err, &storeerr.Error{Code: storeerr.NotFound, Entity: "activity"}))

	_, err = repo.AddParticipant(ctx, 9, activity.Participant{UserID: 1})
	assert.Equal(t, storeerr.NotFound, storeerr.ErrCode(err))

	_, err = repo.GetByID(ctx, 9)
	assert.Equal(t, storeerr.NotFound, storeerr.ErrCode(err))
}

func TestActivityRepository_AddParticipantRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())
	created, _ := repo.Create(ctx, fields("one"))

	p := activity.Participant{UserID: 2, Username: "budi", JoinedAt: time.Now()}
	joined, err := repo.AddParticipant(ctx, created.ID, p)
	require.NoError(t, err)
	assert.Len(t, joined.Participants, 1)

	_, err = repo.AddParticipant(ctx, created.ID, p)
	assert.Equal(t, storeerr.AlreadyExists, storeerr.ErrCode(err))

	stored, _ := repo.GetByID(ctx, created.ID)
	assert.Len(t, stored.Participants, 1)
}

func TestActivityRepository_ConcurrentJoinsKeepOneEntryPerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(nopLogger())
	created, _ := repo.Create(ctx, fields("busy"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, _ = repo.AddParticipant(ctx, created.ID, activity.Participant{UserID: userID})
		}(i % 10)
	}
	wg.Wait()

	stored, _ := repo.GetByID(ctx, created.ID)
	assert.Len(t, stored.Participants, 10)
}

func TestRepositories_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewActivityRepository(nopLogger()).Create(ctx, fields("x"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewUserRepository(nopLogger()).Create(ctx, "a", "h", user.RoleAdmin)
	assert.ErrorIs(t, err, context.Canceled)
}
