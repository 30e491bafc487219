// Package notes is the local key-value storage behind per-record notes and
// the first-visit onboarding flag. Values are last-write-wins per client and key.
package notes

import "time"

// OnboardingKey holds the flag set once the welcome dialog was dismissed.
const OnboardingKey = "hasSeenOnboarding"

const notePrefix = "note:"

// Entry is one stored value.
type Entry struct {
	ClientID  string    `json:"client_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Note is a free-text note attached to a catalog record.
type Note struct {
	RecordID  string     `json:"recordId"`
	Text      string     `json:"text"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NoteKey returns the storage key for a record's note.
func NoteKey(recordID string) string {
	return notePrefix + recordID
}
