package mcp

import (
	"github.com/rpggio/resiliency/internal/domain/filter"
)

// FilterInput is filter state as tool arguments. Query holds a shared-link
// query string; explicit fields replace the matching dimension from it.
type FilterInput struct {
	Query           string   `json:"query,omitempty" jsonschema:"shared-link query string such as installation=JBLM&cost=0,40"`
	Installations   []string `json:"installations,omitempty" jsonschema:"installation names; empty means all"`
	TechnologyTypes []string `json:"technology_types,omitempty" jsonschema:"technology names; empty means all"`
	Vendors         []string `json:"vendors,omitempty" jsonschema:"vendor names; empty means all"`
	Statuses        []string `json:"statuses,omitempty" jsonschema:"raw statuses or outreach levels (Level 1..Level 4)"`
	TechNeeds       []string `json:"tech_needs,omitempty" jsonschema:"capability tags; a record passes when it has any of them"`
	CostMin         *int     `json:"cost_min,omitempty" jsonschema:"lower cost bound as a percentage of the cost scale (0-100)"`
	CostMax         *int     `json:"cost_max,omitempty" jsonschema:"upper cost bound as a percentage of the cost scale (0-100)"`
}

// State resolves the input into a normalized filter state.
func (in FilterInput) State() filter.State {
	state := filter.Decode(in.Query)
	set := func(dim filter.Dimension, values []string) {
		if len(values) > 0 {
			state = state.With(dim, values)
		}
	}
	set(filter.DimInstallation, in.Installations)
	set(filter.DimTechnologyType, in.TechnologyTypes)
	set(filter.DimVendor, in.Vendors)
	set(filter.DimStatus, in.Statuses)
	set(filter.DimTechNeeds, in.TechNeeds)
	if in.CostMin != nil {
		state.Cost.Min = *in.CostMin
	}
	if in.CostMax != nil {
		state.Cost.Max = *in.CostMax
	}
	return state.Normalize()
}

type FilterTechnologiesInput struct {
	Filters FilterInput `json:"filters,omitempty" jsonschema:"filter criteria; omit for the whole catalog"`
	Sort    string      `json:"sort,omitempty" jsonschema:"technology, vendor, installation, status, cost, impact, costPerImpact or gapLevel"`
	Dir     string      `json:"dir,omitempty" jsonschema:"asc or desc"`
}

type GetTechnologyInput struct {
	ID string `json:"id" jsonschema:"record id"`
}

type SearchTechnologiesInput struct {
	Query string `json:"query" jsonschema:"free text; every term must match"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type ListFilterOptionsInput struct{}

type GenerateLinkInput struct {
	Filters FilterInput `json:"filters,omitempty" jsonschema:"filter criteria to encode"`
}

type ListInstallationsInput struct {
	Sort string `json:"sort,omitempty" jsonschema:"name, gapToGreen, gapLevel or technologies"`
	Dir  string `json:"dir,omitempty" jsonschema:"asc or desc"`
}

type GapToGreenInput struct {
	Installation string `json:"installation" jsonschema:"installation name"`
	Sort         string `json:"sort,omitempty" jsonschema:"technology, vendor, status, impact or cost; omit for plan order"`
	Dir          string `json:"dir,omitempty" jsonschema:"asc or desc"`
}

type MapMarkersInput struct {
	Filters FilterInput `json:"filters,omitempty" jsonschema:"filter criteria used for highlighting"`
}

type AnalyticsSummaryInput struct {
	Filters FilterInput `json:"filters,omitempty" jsonschema:"filter criteria selecting the analysed records"`
}

type GetNoteInput struct {
	ID string `json:"id" jsonschema:"record id"`
}

type SaveNoteInput struct {
	ID   string `json:"id" jsonschema:"record id"`
	Text string `json:"text" jsonschema:"note text; empty clears the note"`
}

type LinkResult struct {
	Link  string `json:"link"`
	Query string `json:"query"`
}
