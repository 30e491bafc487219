package session

import (
	"time"

	"github.com/rpggio/resiliency/internal/domain/filter"
)

// MaxCompare is the number of records that can be pinned side by side.
const MaxCompare = 3

// DefaultCompareFields are the columns shown for a pinned record.
var DefaultCompareFields = []string{
	"technology", "cost", "gapLevel", "resiliencyImpact", "status", "vendor", "installation",
}

// Session is one viewer's workspace: filter state, compare pins and the
// record open in the detail panel.
type Session struct {
	ID           string       `json:"id"`
	ClientID     string       `json:"client_id"`
	Filters      filter.State `json:"filters"`
	Compare      Compare      `json:"compare"`
	Details      Details      `json:"details"`
	CreatedAt    time.Time    `json:"created_at"`
	LastActivity time.Time    `json:"last_activity"`
}

// CompareItem is a pinned record and the fields shown for it.
type CompareItem struct {
	ID              string   `json:"id"`
	FieldsToCompare []string `json:"fieldsToCompare"`
}

// Compare is the ordered Compare Selection.
type Compare []CompareItem

// Contains reports whether id is pinned.
func (c Compare) Contains(id string) bool {
	for _, item := range c {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Add pins id at the end. It is a no-op returning false when id is already
// pinned or the selection is full.
func (c Compare) Add(id string) (Compare, bool) {
	if len(c) >= MaxCompare || c.Contains(id) {
		return c, false
	}
	out := make(Compare, len(c), len(c)+1)
	copy(out, c)
	fields := append([]string(nil), DefaultCompareFields...)
	return append(out, CompareItem{ID: id, FieldsToCompare: fields}), true
}

// Remove unpins id, keeping the order of the rest.
func (c Compare) Remove(id string) Compare {
	out := make(Compare, 0, len(c))
	for _, item := range c {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// IDs lists pinned ids in pin order.
func (c Compare) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, item := range c {
		ids = append(ids, item.ID)
	}
	return ids
}

// Details is the Detail Selection: at most one active record plus whether
// the panel is open.
type Details struct {
	ActiveRecord string `json:"activeRecord,omitempty"`
	Open         bool   `json:"open"`
}

// Select makes id active and opens the panel.
func (d Details) Select(id string) Details {
	return Details{ActiveRecord: id, Open: true}
}

// Close hides the panel. The active record stays so it can be reopened.
func (d Details) Close() Details {
	d.Open = false
	return d
}

// Toggle flips the panel. Opening requires an active record.
func (d Details) Toggle() Details {
	if d.ActiveRecord == "" {
		d.Open = false
		return d
	}
	d.Open = !d.Open
	return d
}
