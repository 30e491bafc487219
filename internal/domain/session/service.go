package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/rpggio/resiliency/internal/repository"
)

// Service handles workspace operations.
type Service struct {
	sessions Repository
	records  RecordStore
	activity ActivityRecorder
	linkBase string
	logger   *slog.Logger
	now      func() time.Time
	locks    sessionLocks
}

// NewService creates a new session service. linkBase is the page URL that
// shareable links are built on; recorder may be nil.
func NewService(
	sessions Repository,
	records RecordStore,
	recorder ActivityRecorder,
	linkBase string,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions: sessions,
		records:  records,
		activity: recorder,
		linkBase: linkBase,
		logger:   logger,
		now:      time.Now,
	}
}

// FilterResult is a workspace together with the link that reproduces its filters.
type FilterResult struct {
	Session *Session `json:"session"`
	Link    string   `json:"link"`
}

// CompareResult reports whether a pin request changed the selection.
type CompareResult struct {
	Session *Session `json:"session"`
	Added   bool     `json:"added"`
}

// Start creates a workspace seeded with initial filters, usually decoded
// from a shared link.
func (s *Service) Start(ctx context.Context, clientID string, initial filter.State) (*Session, error) {
	if clientID == "" {
		return nil, ErrInvalidInput
	}

	now := s.now().UTC()
	sess := &Session{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		Filters:      initial.Normalize(),
		Compare:      Compare{},
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.record(ctx, sess, nil, activity.TypeSessionStarted, "workspace started")
	if s.logger != nil {
		s.logger.Debug("session started", "session_id", sess.ID, "client_id", clientID)
	}
	return sess, nil
}

// Get loads a workspace.
func (s *Service) Get(ctx context.Context, clientID, sessionID string) (*Session, error) {
	if clientID == "" || sessionID == "" {
		return nil, ErrInvalidInput
	}
	sess, err := s.sessions.Get(ctx, clientID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}

// Close discards a workspace. Compare pins and detail selection go with it.
func (s *Service) Close(ctx context.Context, clientID, sessionID string) error {
	if clientID == "" || sessionID == "" {
		return ErrInvalidInput
	}
	if err := s.sessions.Delete(ctx, clientID, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("closing session: %w", err)
	}
	s.record(ctx, &Session{ID: sessionID, ClientID: clientID}, nil, activity.TypeSessionClosed, "workspace closed")
	return nil
}

// SetFilters replaces the filter state and returns the shareable link for it.
func (s *Service) SetFilters(ctx context.Context, clientID, sessionID string, state filter.State) (*FilterResult, error) {
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Filters = state.Normalize()
		return nil
	})
	if err != nil {
		return nil, err
	}
	link := filter.Link(s.linkBase, sess.Filters)
	s.record(ctx, sess, nil, activity.TypeFiltersChanged, link)
	return &FilterResult{Session: sess, Link: link}, nil
}

// ClearFilters resets every dimension and the cost range.
func (s *Service) ClearFilters(ctx context.Context, clientID, sessionID string) (*FilterResult, error) {
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Filters = filter.Default()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, sess, nil, activity.TypeFiltersCleared, "filters cleared")
	return &FilterResult{Session: sess, Link: filter.Link(s.linkBase, sess.Filters)}, nil
}

// AddToCompare pins a record. Pinning a fourth record or one already pinned
// is ignored and reported through Added.
func (s *Service) AddToCompare(ctx context.Context, clientID, sessionID, recordID string) (*CompareResult, error) {
	if _, err := s.lookup(recordID); err != nil {
		return nil, err
	}
	var added bool
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Compare, added = sess.Compare.Add(recordID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if added {
		s.record(ctx, sess, &recordID, activity.TypeCompareAdded, "pinned "+recordID)
	}
	return &CompareResult{Session: sess, Added: added}, nil
}

// RemoveFromCompare unpins a record. Unpinning a record that is not pinned
// leaves the selection unchanged.
func (s *Service) RemoveFromCompare(ctx context.Context, clientID, sessionID, recordID string) (*Session, error) {
	if recordID == "" {
		return nil, ErrInvalidInput
	}
	var removed bool
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		removed = sess.Compare.Contains(recordID)
		sess.Compare = sess.Compare.Remove(recordID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if removed {
		s.record(ctx, sess, &recordID, activity.TypeCompareRemoved, "unpinned "+recordID)
	}
	return sess, nil
}

// ClearCompare unpins everything.
func (s *Service) ClearCompare(ctx context.Context, clientID, sessionID string) (*Session, error) {
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Compare = Compare{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, sess, nil, activity.TypeCompareCleared, "compare cleared")
	return sess, nil
}

// ComparedRecords resolves the pinned records in pin order.
func (s *Service) ComparedRecords(ctx context.Context, clientID, sessionID string) ([]technology.View, error) {
	sess, err := s.Get(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	views := make([]technology.View, 0, len(sess.Compare))
	for _, item := range sess.Compare {
		rec, err := s.lookup(item.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, technology.NewView(rec))
	}
	return views, nil
}

// SelectRecord makes a record active and opens the detail panel.
func (s *Service) SelectRecord(ctx context.Context, clientID, sessionID, recordID string) (*Session, error) {
	if _, err := s.lookup(recordID); err != nil {
		return nil, err
	}
	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Details = sess.Details.Select(recordID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, sess, &recordID, activity.TypeDetailsOpened, "details for "+recordID)
	return sess, nil
}

// CloseDetails hides the detail panel.
func (s *Service) CloseDetails(ctx context.Context, clientID, sessionID string) (*Session, error) {
	return s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Details = sess.Details.Close()
		return nil
	})
}

// ToggleDetails flips the detail panel for the active record.
func (s *Service) ToggleDetails(ctx context.Context, clientID, sessionID string) (*Session, error) {
	return s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Details = sess.Details.Toggle()
		return nil
	})
}

// SelectInstallation handles a map marker click: it toggles the installation
// filter and opens the details of the installation's first record.
func (s *Service) SelectInstallation(ctx context.Context, clientID, sessionID, name string) (*FilterResult, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	records := s.records.ByInstallation(name)
	if len(records) == 0 {
		return nil, ErrInstallationNotFound
	}
	first := records[0].ID

	sess, err := s.mutate(ctx, clientID, sessionID, func(sess *Session) error {
		sess.Filters = sess.Filters.Toggle(filter.DimInstallation, name)
		sess.Details = sess.Details.Select(first)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, sess, &first, activity.TypeInstallationFocus, name)
	return &FilterResult{Session: sess, Link: filter.Link(s.linkBase, sess.Filters)}, nil
}

// mutate runs one load, apply, save cycle. Cycles on the same workspace are
// serialized so concurrent requests do not overwrite each other.
func (s *Service) mutate(ctx context.Context, clientID, sessionID string, apply func(*Session) error) (*Session, error) {
	unlock := s.locks.lock(clientID + "/" + sessionID)
	defer unlock()

	sess, err := s.Get(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(sess); err != nil {
		return nil, err
	}
	sess.LastActivity = s.now().UTC()
	if err := s.sessions.Update(ctx, sess); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("updating session: %w", err)
	}
	return sess, nil
}

func (s *Service) lookup(recordID string) (technology.Record, error) {
	if recordID == "" {
		return technology.Record{}, ErrInvalidInput
	}
	rec, err := s.records.Get(recordID)
	if err != nil {
		if errors.Is(err, technology.ErrRecordNotFound) {
			return technology.Record{}, ErrRecordNotFound
		}
		return technology.Record{}, fmt.Errorf("loading record: %w", err)
	}
	return rec, nil
}

func (s *Service) record(ctx context.Context, sess *Session, recordID *string, kind activity.ActivityType, summary string) {
	if s.activity == nil {
		return
	}
	sessionID := sess.ID
	s.activity.Record(ctx, sess.ClientID, &activity.ActivityEntry{
		SessionID:    &sessionID,
		RecordID:     recordID,
		ActivityType: kind,
		Summary:      summary,
	})
}
