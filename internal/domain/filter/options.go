package filter

import "github.com/rpggio/resiliency/internal/domain/technology"

// Options lists the distinct values selectable per dimension.
type Options struct {
	Installations  []string `json:"installations"`
	Technologies   []string `json:"technologies"`
	Vendors        []string `json:"vendors"`
	Statuses       []string `json:"statuses"`
	OutreachLevels []string `json:"outreachLevels"`
	TechNeeds      []string `json:"techNeeds"`
}

// Collect gathers distinct values in encounter order.
func Collect(records []technology.Record) Options {
	var b optionsBuilder
	for _, rec := range records {
		b.installations.add(rec.Installation)
		b.technologies.add(rec.Technology)
		b.vendors.add(rec.Vendor)
		b.statuses.add(string(rec.Status))
		b.levels.add(string(technology.NormalizeOutreach(rec)))
		for _, tag := range rec.TechNeeds {
			b.techNeeds.add(tag)
		}
	}
	return b.build()
}

// Available returns the options reachable in the filtered records, always
// including the values currently selected so they can be deselected.
// Selected status values land in Statuses or OutreachLevels depending on
// what they name.
func Available(filtered []technology.Record, state State) Options {
	opts := Collect(filtered)
	opts.Installations = union(opts.Installations, state.Installation)
	opts.Technologies = union(opts.Technologies, state.TechnologyType)
	opts.Vendors = union(opts.Vendors, state.Vendor)
	opts.TechNeeds = union(opts.TechNeeds, state.TechNeeds)
	for _, v := range state.Status {
		if technology.IsOutreachLevel(v) {
			opts.OutreachLevels = union(opts.OutreachLevels, []string{v})
		} else {
			opts.Statuses = union(opts.Statuses, []string{v})
		}
	}
	return opts
}

// ForDimension returns the option list backing a dimension. Status returns
// raw statuses followed by outreach levels.
func (o Options) ForDimension(dim Dimension) []string {
	switch dim {
	case DimInstallation:
		return o.Installations
	case DimTechnologyType:
		return o.Technologies
	case DimVendor:
		return o.Vendors
	case DimStatus:
		return union(o.Statuses, o.OutreachLevels)
	case DimTechNeeds:
		return o.TechNeeds
	}
	return nil
}

type orderedSet struct {
	values []string
	seen   map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

func (s *orderedSet) list() []string {
	if s.values == nil {
		return []string{}
	}
	return s.values
}

type optionsBuilder struct {
	installations, technologies, vendors, statuses, levels, techNeeds orderedSet
}

func (b *optionsBuilder) build() Options {
	return Options{
		Installations:  b.installations.list(),
		Technologies:   b.technologies.list(),
		Vendors:        b.vendors.list(),
		Statuses:       b.statuses.list(),
		OutreachLevels: b.levels.list(),
		TechNeeds:      b.techNeeds.list(),
	}
}

func union(base, extra []string) []string {
	var s orderedSet
	for _, v := range base {
		s.add(v)
	}
	for _, v := range extra {
		s.add(v)
	}
	return s.list()
}
