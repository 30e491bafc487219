package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeSessionStarted    ActivityType = "session_started"
	TypeSessionClosed     ActivityType = "session_closed"
	TypeFiltersChanged    ActivityType = "filters_changed"
	TypeFiltersCleared    ActivityType = "filters_cleared"
	TypeCompareAdded      ActivityType = "compare_added"
	TypeCompareRemoved    ActivityType = "compare_removed"
	TypeCompareCleared    ActivityType = "compare_cleared"
	TypeDetailsOpened     ActivityType = "details_opened"
	TypeInstallationFocus ActivityType = "installation_focus"
	TypeNoteSaved         ActivityType = "note_saved"
	TypeOnboardingSeen    ActivityType = "onboarding_seen"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	ClientID     string       `json:"client_id"`
	SessionID    *string      `json:"session_id,omitempty"`
	RecordID     *string      `json:"record_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
