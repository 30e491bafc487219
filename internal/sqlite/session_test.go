package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/repository"
	"github.com/stretchr/testify/require"
)

func newSession(id, clientID string) *session.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &session.Session{
		ID:           id,
		ClientID:     clientID,
		Filters:      filter.Default(),
		Compare:      session.Compare{},
		CreatedAt:    now,
		LastActivity: now,
	}
}

func TestSessionRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	sess := newSession("s1", "client1")
	sess.Filters = sess.Filters.With(filter.DimInstallation, []string{"Fort A"})
	sess.Filters.Cost = filter.CostRange{Min: 10, Max: 40}
	sess.Compare, _ = sess.Compare.Add("t1")
	sess.Details = sess.Details.Select("t1")

	require.NoError(t, repo.Create(ctx, sess))

	loaded, err := repo.Get(ctx, "client1", "s1")
	require.NoError(t, err)
	require.Equal(t, "client1", loaded.ClientID)
	require.True(t, sess.Filters.Equal(loaded.Filters))
	require.Equal(t, []string{"t1"}, loaded.Compare.IDs())
	require.Equal(t, session.DefaultCompareFields, loaded.Compare[0].FieldsToCompare)
	require.Equal(t, session.Details{ActiveRecord: "t1", Open: true}, loaded.Details)
	require.WithinDuration(t, sess.CreatedAt, loaded.CreatedAt, time.Second)
}

func TestSessionRepository_DuplicateID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	require.NoError(t, repo.Create(ctx, newSession("s1", "client1")))
	require.ErrorIs(t, repo.Create(ctx, newSession("s1", "client1")), repository.ErrConflict)
}

func TestSessionRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	sess := newSession("s1", "client1")
	require.NoError(t, repo.Create(ctx, sess))

	sess.Compare, _ = sess.Compare.Add("t2")
	sess.Compare, _ = sess.Compare.Add("t3")
	sess.Details = session.Details{ActiveRecord: "t3"}
	sess.Filters = filter.Default().With(filter.DimStatus, []string{"Level 2"})
	require.NoError(t, repo.Update(ctx, sess))

	loaded, err := repo.Get(ctx, "client1", "s1")
	require.NoError(t, err)
	require.Equal(t, []string{"t2", "t3"}, loaded.Compare.IDs())
	require.Equal(t, []string{"Level 2"}, loaded.Filters.Status)
	require.False(t, loaded.Details.Open)
	require.Equal(t, "t3", loaded.Details.ActiveRecord)

	missing := newSession("nope", "client1")
	require.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}

func TestSessionRepository_ClientIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	require.NoError(t, repo.Create(ctx, newSession("s1", "client1")))

	_, err := repo.Get(ctx, "client2", "s1")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "client2", "s1"), repository.ErrNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	require.NoError(t, repo.Create(ctx, newSession("s1", "client1")))
	require.NoError(t, repo.Delete(ctx, "client1", "s1"))

	_, err := repo.Get(ctx, "client1", "s1")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "client1", "s1"), repository.ErrNotFound)
}
