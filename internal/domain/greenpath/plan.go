package greenpath

import (
	"cmp"
	"math"
	"slices"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// CurrentScore returns the installation's shared existing score: the first
// record carrying one, or DefaultScore.
func CurrentScore(records []technology.Record) float64 {
	for _, rec := range records {
		if rec.ExistingResiliencyScore != nil {
			return *rec.ExistingResiliencyScore
		}
	}
	return DefaultScore
}

// Gap is the point deficit between a score and the target, never negative.
func Gap(current float64) float64 {
	return math.Max(0, TargetScore-current)
}

// Classify places a score in the green, yellow or red band.
func Classify(score float64) Standing {
	switch {
	case score >= TargetScore:
		return StandingGreen
	case score >= YellowScore:
		return StandingYellow
	default:
		return StandingRed
	}
}

// Compute builds the gap-to-green plan for one installation from its
// records. Records are taken highest impact first (ties keep input order)
// until their combined impact covers the gap. When the records run out
// first the partial plan is returned with Achievable false.
func Compute(installation string, records []technology.Record) Plan {
	current := CurrentScore(records)
	gap := Gap(current)
	plan := Plan{
		Installation:     installation,
		CurrentScore:     current,
		TargetScore:      TargetScore,
		Gap:              gap,
		Recommended:      []Recommendation{},
		Achievable:       true,
		TotalCostLabel:   technology.FormatCost(0),
		AvailableRecords: len(records),
	}
	if gap == 0 {
		return plan
	}

	for _, rec := range byImpact(records) {
		remaining := gap - plan.TotalImpact
		if remaining <= 0 {
			break
		}
		plan.Recommended = append(plan.Recommended, Recommendation{
			View:              technology.NewView(rec),
			ContributionToGap: math.Min(rec.ResiliencyImpact, remaining),
		})
		plan.TotalImpact += rec.ResiliencyImpact
		plan.TotalCost += rec.Cost
	}
	plan.Achievable = plan.TotalImpact >= gap
	plan.TotalCostLabel = technology.FormatCost(plan.TotalCost)
	return plan
}

// TechsNeeded counts how many records the greedy plan takes.
func TechsNeeded(records []technology.Record) int {
	if Gap(CurrentScore(records)) == 0 {
		return 0
	}
	return len(Compute("", records).Recommended)
}

func byImpact(records []technology.Record) []technology.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b technology.Record) int {
		return cmp.Compare(b.ResiliencyImpact, a.ResiliencyImpact)
	})
	return sorted
}
