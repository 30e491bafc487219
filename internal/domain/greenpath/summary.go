package greenpath

import (
	"cmp"
	"slices"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// SummaryKey names a sortable installation overview column.
type SummaryKey string

const (
	SummaryByName         SummaryKey = "name"
	SummaryByGap          SummaryKey = "gapToGreen"
	SummaryByGapLevel     SummaryKey = "gapLevel"
	SummaryByTechnologies SummaryKey = "technologies"
)

// RecommendationKey names a sortable plan column.
type RecommendationKey string

const (
	RecommendationByTechnology RecommendationKey = "technology"
	RecommendationByVendor     RecommendationKey = "vendor"
	RecommendationByStatus     RecommendationKey = "status"
	RecommendationByImpact     RecommendationKey = "impact"
	RecommendationByCost       RecommendationKey = "cost"
)

// ParseSummaryKey validates an overview sort column. Empty means name.
func ParseSummaryKey(v string) (SummaryKey, error) {
	switch key := SummaryKey(v); key {
	case "":
		return SummaryByName, nil
	case SummaryByName, SummaryByGap, SummaryByGapLevel, SummaryByTechnologies:
		return key, nil
	}
	return "", ErrInvalidSortKey
}

// ParseRecommendationKey validates a plan sort column. Empty means technology.
func ParseRecommendationKey(v string) (RecommendationKey, error) {
	switch key := RecommendationKey(v); key {
	case "":
		return RecommendationByTechnology, nil
	case RecommendationByTechnology, RecommendationByVendor, RecommendationByStatus,
		RecommendationByImpact, RecommendationByCost:
		return key, nil
	}
	return "", ErrInvalidSortKey
}

// Summarize returns one overview row per installation, ordered by name.
func Summarize(records []technology.Record) []InstallationSummary {
	var order []string
	groups := make(map[string][]technology.Record)
	for _, rec := range records {
		if _, ok := groups[rec.Installation]; !ok {
			order = append(order, rec.Installation)
		}
		groups[rec.Installation] = append(groups[rec.Installation], rec)
	}

	out := make([]InstallationSummary, 0, len(order))
	for _, name := range order {
		group := groups[name]
		current := CurrentScore(group)
		gapLevel := group[0].GapLevel
		if gapLevel == "" {
			gapLevel = technology.GapLow
		}
		out = append(out, InstallationSummary{
			Name:          name,
			ExistingScore: current,
			Gap:           Gap(current),
			GapLevel:      gapLevel,
			Technologies:  len(group),
			TechsNeeded:   TechsNeeded(group),
			Standing:      Classify(current),
		})
	}
	return SortSummaries(out, SummaryByName, technology.Asc)
}

// SortSummaries returns a stably sorted copy.
func SortSummaries(list []InstallationSummary, key SummaryKey, dir technology.Direction) []InstallationSummary {
	out := slices.Clone(list)
	col := technology.NewCollator()
	slices.SortStableFunc(out, func(a, b InstallationSummary) int {
		var c int
		switch key {
		case SummaryByName:
			c = col.CompareString(a.Name, b.Name)
		case SummaryByGap:
			c = cmp.Compare(a.Gap, b.Gap)
		case SummaryByGapLevel:
			c = cmp.Compare(technology.GapRank(a.GapLevel), technology.GapRank(b.GapLevel))
		case SummaryByTechnologies:
			c = cmp.Compare(a.Technologies, b.Technologies)
		}
		if dir == technology.Desc {
			return -c
		}
		return c
	})
	return out
}

// SortRecommendations returns a stably sorted copy of a plan's entries.
func SortRecommendations(list []Recommendation, key RecommendationKey, dir technology.Direction) []Recommendation {
	out := slices.Clone(list)
	col := technology.NewCollator()
	slices.SortStableFunc(out, func(a, b Recommendation) int {
		var c int
		switch key {
		case RecommendationByTechnology:
			c = col.CompareString(a.Technology, b.Technology)
		case RecommendationByVendor:
			c = col.CompareString(a.Vendor, b.Vendor)
		case RecommendationByStatus:
			c = cmp.Compare(technology.OutreachRank(a.Outreach), technology.OutreachRank(b.Outreach))
		case RecommendationByImpact:
			c = cmp.Compare(a.ResiliencyImpact, b.ResiliencyImpact)
		case RecommendationByCost:
			c = cmp.Compare(a.Cost, b.Cost)
		}
		if dir == technology.Desc {
			return -c
		}
		return c
	})
	return out
}
