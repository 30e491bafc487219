package technology

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a sortable record column.
type SortKey string

const (
	SortNone          SortKey = ""
	SortTechnology    SortKey = "technology"
	SortVendor        SortKey = "vendor"
	SortInstallation  SortKey = "installation"
	SortStatus        SortKey = "status"
	SortCost          SortKey = "cost"
	SortImpact        SortKey = "impact"
	SortCostPerImpact SortKey = "costPerImpact"
	SortGapLevel      SortKey = "gapLevel"
)

// Direction is ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortKey validates a sort column name. Empty means load order.
func ParseSortKey(v string) (SortKey, error) {
	switch key := SortKey(v); key {
	case SortNone, SortTechnology, SortVendor, SortInstallation, SortStatus,
		SortCost, SortImpact, SortCostPerImpact, SortGapLevel:
		return key, nil
	}
	return SortNone, ErrInvalidSortKey
}

// ParseDirection returns Desc for "desc" and Asc otherwise.
func ParseDirection(v string) Direction {
	if Direction(v) == Desc {
		return Desc
	}
	return Asc
}

// NewCollator returns an English collator for display-name ordering.
// Collators are not safe for concurrent use; create one per sort.
func NewCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// SortRecords returns a stably sorted copy of records. Records whose
// cost-per-impact is not applicable always come last for SortCostPerImpact.
func SortRecords(records []Record, key SortKey, dir Direction) []Record {
	out := slices.Clone(records)
	if key == SortNone {
		return out
	}
	col := NewCollator()
	sign := 1
	if dir == Desc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		if key == SortCostPerImpact {
			ea, eb := CostPerImpact(a), CostPerImpact(b)
			switch {
			case !ea.Applicable && !eb.Applicable:
				return 0
			case !ea.Applicable:
				return 1
			case !eb.Applicable:
				return -1
			}
			return sign * cmp.Compare(ea.Value, eb.Value)
		}
		return sign * compareRecords(col, a, b, key)
	})
	return out
}

func compareRecords(col *collate.Collator, a, b Record, key SortKey) int {
	switch key {
	case SortTechnology:
		return col.CompareString(a.Technology, b.Technology)
	case SortVendor:
		return col.CompareString(a.Vendor, b.Vendor)
	case SortInstallation:
		return col.CompareString(a.Installation, b.Installation)
	case SortStatus:
		return cmp.Compare(OutreachRank(NormalizeOutreach(a)), OutreachRank(NormalizeOutreach(b)))
	case SortCost:
		return cmp.Compare(a.Cost, b.Cost)
	case SortImpact:
		return cmp.Compare(a.ResiliencyImpact, b.ResiliencyImpact)
	case SortGapLevel:
		return cmp.Compare(GapRank(a.GapLevel), GapRank(b.GapLevel))
	}
	return 0
}
