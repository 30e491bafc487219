package installation

import (
	"slices"

	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Highlight describes how a marker is drawn relative to the installation filter.
type Highlight string

const (
	HighlightDefault  Highlight = "default"
	HighlightSelected Highlight = "selected"
	HighlightDimmed   Highlight = "dimmed"
)

// Marker is one installation placed on the map.
type Marker struct {
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Count        int       `json:"count"`
	Technologies []string  `json:"technologies"`
	Highlight    Highlight `json:"highlight"`
}

// Markers places each installation that has a position. The first geo seen
// for an installation wins; counts and technology names cover all of its
// records.
func Markers(records []technology.Record, state filter.State) []Marker {
	var order []string
	geos := make(map[string]technology.Geo)
	counts := make(map[string]int)
	techs := make(map[string][]string)

	for _, rec := range records {
		if rec.Geo != nil {
			if _, ok := geos[rec.Installation]; !ok {
				geos[rec.Installation] = *rec.Geo
				order = append(order, rec.Installation)
			}
		}
		counts[rec.Installation]++
		if !slices.Contains(techs[rec.Installation], rec.Technology) {
			techs[rec.Installation] = append(techs[rec.Installation], rec.Technology)
		}
	}

	out := make([]Marker, 0, len(order))
	for _, name := range order {
		geo := geos[name]
		out = append(out, Marker{
			Name:         name,
			Lat:          geo.Lat,
			Lng:          geo.Lng,
			Count:        counts[name],
			Technologies: techs[name],
			Highlight:    highlight(name, state),
		})
	}
	return out
}

func highlight(name string, state filter.State) Highlight {
	if len(state.Installation) == 0 {
		return HighlightDefault
	}
	if slices.Contains(state.Installation, name) {
		return HighlightSelected
	}
	return HighlightDimmed
}
