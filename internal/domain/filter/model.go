package filter

import "slices"

// Dimension names a multi-value filter field.
type Dimension string

const (
	DimInstallation   Dimension = "installation"
	DimTechnologyType Dimension = "technology"
	DimVendor         Dimension = "vendor"
	DimStatus         Dimension = "status"
	DimTechNeeds      Dimension = "techNeeds"
)

// Dimensions lists every multi-value dimension in query order.
var Dimensions = []Dimension{DimInstallation, DimTechnologyType, DimVendor, DimStatus, DimTechNeeds}

// CostRange bounds cost as percentages of the cost scale, inclusive.
type CostRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultCostRange is the unrestricted range.
var DefaultCostRange = CostRange{Min: 0, Max: 100}

// IsDefault reports whether the range leaves cost unrestricted.
func (c CostRange) IsDefault() bool {
	return c == DefaultCostRange
}

// Valid reports whether the range is ordered and inside [0,100].
func (c CostRange) Valid() bool {
	return c.Min >= 0 && c.Max <= 100 && c.Min <= c.Max
}

// State is the user-editable filter criteria. An empty slice means every
// value passes for that dimension.
type State struct {
	Installation   []string  `json:"installation"`
	TechnologyType []string  `json:"technologyType"`
	Vendor         []string  `json:"vendor"`
	Status         []string  `json:"status"`
	TechNeeds      []string  `json:"techNeeds"`
	Cost           CostRange `json:"costRange"`
}

// Default returns the unrestricted state.
func Default() State {
	return State{
		Installation:   []string{},
		TechnologyType: []string{},
		Vendor:         []string{},
		Status:         []string{},
		TechNeeds:      []string{},
		Cost:           DefaultCostRange,
	}
}

// Values returns the selected values of a dimension.
func (s State) Values(dim Dimension) []string {
	switch dim {
	case DimInstallation:
		return s.Installation
	case DimTechnologyType:
		return s.TechnologyType
	case DimVendor:
		return s.Vendor
	case DimStatus:
		return s.Status
	case DimTechNeeds:
		return s.TechNeeds
	}
	return nil
}

// With returns a copy of the state with one dimension replaced.
func (s State) With(dim Dimension, values []string) State {
	out := s.Clone()
	v := dedupe(values)
	switch dim {
	case DimInstallation:
		out.Installation = v
	case DimTechnologyType:
		out.TechnologyType = v
	case DimVendor:
		out.Vendor = v
	case DimStatus:
		out.Status = v
	case DimTechNeeds:
		out.TechNeeds = v
	}
	return out
}

// Toggle adds the value to a dimension, or removes it if already selected.
func (s State) Toggle(dim Dimension, value string) State {
	current := s.Values(dim)
	if slices.Contains(current, value) {
		next := make([]string, 0, len(current))
		for _, v := range current {
			if v != value {
				next = append(next, v)
			}
		}
		return s.With(dim, next)
	}
	return s.With(dim, append(slices.Clone(current), value))
}

// IsDefault reports whether nothing is restricted.
func (s State) IsDefault() bool {
	for _, dim := range Dimensions {
		if len(s.Values(dim)) > 0 {
			return false
		}
	}
	return s.Cost.IsDefault()
}

// Clone returns a deep copy with non-nil slices.
func (s State) Clone() State {
	return State{
		Installation:   cloneValues(s.Installation),
		TechnologyType: cloneValues(s.TechnologyType),
		Vendor:         cloneValues(s.Vendor),
		Status:         cloneValues(s.Status),
		TechNeeds:      cloneValues(s.TechNeeds),
		Cost:           s.Cost,
	}
}

// Normalize returns a copy with duplicate values removed and an invalid cost
// range reset to the default.
func (s State) Normalize() State {
	out := s.Clone()
	for _, dim := range Dimensions {
		out = out.With(dim, out.Values(dim))
	}
	if !out.Cost.Valid() {
		out.Cost = DefaultCostRange
	}
	return out
}

// Equal compares two states ignoring value order.
func (s State) Equal(other State) bool {
	if s.Cost != other.Cost {
		return false
	}
	for _, dim := range Dimensions {
		a := slices.Sorted(slices.Values(dedupe(s.Values(dim))))
		b := slices.Sorted(slices.Values(dedupe(other.Values(dim))))
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}

func cloneValues(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
