package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/repository"
)

// Service reads and writes notes and the onboarding flag.
type Service struct {
	repo     Repository
	records  RecordLookup
	activity ActivityRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a notes service. activity may be nil.
func NewService(repo Repository, records RecordLookup, recorder ActivityRecorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		records:  records,
		activity: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// SaveNote stores the note for a record, replacing any previous text.
func (s *Service) SaveNote(ctx context.Context, clientID, recordID, text string) (*Note, error) {
	if clientID == "" || recordID == "" {
		return nil, ErrInvalidInput
	}
	if !s.records.Has(recordID) {
		return nil, ErrRecordNotFound
	}

	entry := &Entry{
		ClientID:  clientID,
		Key:       NoteKey(recordID),
		Value:     text,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	s.record(ctx, clientID, &activity.ActivityEntry{
		RecordID:     &recordID,
		ActivityType: activity.TypeNoteSaved,
		Summary:      "note saved for " + recordID,
	})
	return &Note{RecordID: recordID, Text: text, UpdatedAt: &entry.UpdatedAt}, nil
}

// GetNote returns the note for a record. A record without a note yields
// empty text.
func (s *Service) GetNote(ctx context.Context, clientID, recordID string) (*Note, error) {
	if clientID == "" || recordID == "" {
		return nil, ErrInvalidInput
	}
	if !s.records.Has(recordID) {
		return nil, ErrRecordNotFound
	}

	entry, err := s.repo.Get(ctx, clientID, NoteKey(recordID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &Note{RecordID: recordID}, nil
		}
		return nil, fmt.Errorf("loading note: %w", err)
	}
	updated := entry.UpdatedAt
	return &Note{RecordID: recordID, Text: entry.Value, UpdatedAt: &updated}, nil
}

// HasSeenOnboarding reports whether the client dismissed the welcome dialog.
func (s *Service) HasSeenOnboarding(ctx context.Context, clientID string) (bool, error) {
	if clientID == "" {
		return false, ErrInvalidInput
	}
	entry, err := s.repo.Get(ctx, clientID, OnboardingKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading onboarding flag: %w", err)
	}
	seen, err := strconv.ParseBool(entry.Value)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("ignoring malformed onboarding flag", "client_id", clientID, "value", entry.Value)
		}
		return false, nil
	}
	return seen, nil
}

// MarkOnboardingSeen sets the onboarding flag.
func (s *Service) MarkOnboardingSeen(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidInput
	}
	entry := &Entry{
		ClientID:  clientID,
		Key:       OnboardingKey,
		Value:     strconv.FormatBool(true),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Put(ctx, entry); err != nil {
		return fmt.Errorf("saving onboarding flag: %w", err)
	}
	s.record(ctx, clientID, &activity.ActivityEntry{
		ActivityType: activity.TypeOnboardingSeen,
		Summary:      "onboarding dismissed",
	})
	return nil
}

func (s *Service) record(ctx context.Context, clientID string, entry *activity.ActivityEntry) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ctx, clientID, entry)
}
