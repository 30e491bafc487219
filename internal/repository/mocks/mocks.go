package mocks

import (
	"context"

	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/rpggio/resiliency/internal/repository"
	"github.com/stretchr/testify/mock"
)

// SessionRepository is a mock for session.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, clientID, id string) (*session.Session, error) {
	args := m.Called(ctx, clientID, id)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Update(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, clientID, id string) error {
	args := m.Called(ctx, clientID, id)
	return args.Error(0)
}

// NoteRepository is a mock for notes.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Put(ctx context.Context, entry *notes.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *NoteRepository) Get(ctx context.Context, clientID, key string) (*notes.Entry, error) {
	args := m.Called(ctx, clientID, key)
	if entry, ok := args.Get(0).(*notes.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, clientID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, clientID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, clientID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, clientID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CatalogRepository is a mock for repository.CatalogRepository.
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) Import(ctx context.Context, records []technology.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *CatalogRepository) Search(ctx context.Context, query string, opts repository.SearchOptions) ([]repository.SearchHit, error) {
	args := m.Called(ctx, query, opts)
	if hits, ok := args.Get(0).([]repository.SearchHit); ok {
		return hits, args.Error(1)
	}
	return nil, args.Error(1)
}
