package filter

import (
	"slices"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Apply returns the records that pass every non-empty dimension of the
// state, in input order. Neither argument is modified.
func Apply(records []technology.Record, state State) []technology.Record {
	out := make([]technology.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, state) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single record passes the state.
func Matches(rec technology.Record, state State) bool {
	if !state.Cost.IsDefault() {
		p := technology.CostToPercent(rec.Cost)
		if p < float64(state.Cost.Min) || p > float64(state.Cost.Max) {
			return false
		}
	}
	if !selected(state.Installation, rec.Installation) {
		return false
	}
	if !selected(state.TechnologyType, rec.Technology) {
		return false
	}
	if !selected(state.Vendor, rec.Vendor) {
		return false
	}
	if len(state.Status) > 0 &&
		!slices.Contains(state.Status, string(rec.Status)) &&
		!slices.Contains(state.Status, string(technology.NormalizeOutreach(rec))) {
		return false
	}
	if len(state.TechNeeds) > 0 && !slices.ContainsFunc(rec.TechNeeds, func(tag string) bool {
		return slices.Contains(state.TechNeeds, tag)
	}) {
		return false
	}
	return true
}

func selected(values []string, v string) bool {
	return len(values) == 0 || slices.Contains(values, v)
}
