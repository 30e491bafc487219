package greenpath_test

import (
	"testing"

	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func rec(id, inst string, impact, cost float64, existing *float64) technology.Record {
	return technology.Record{
		ID:                      id,
		Technology:              "Tech " + id,
		Vendor:                  "Vendor " + id,
		Installation:            inst,
		Status:                  technology.StatusPlanning,
		Cost:                    cost,
		ResiliencyImpact:        impact,
		GapLevel:                technology.GapMedium,
		ExistingResiliencyScore: existing,
	}
}

func TestCompute_AlreadyGreen(t *testing.T) {
	plan := greenpath.Compute("Fort A", []technology.Record{
		rec("a", "Fort A", 10, 100, score(85)),
		rec("b", "Fort A", 5, 100, score(85)),
	})
	require.Equal(t, 0.0, plan.Gap)
	require.True(t, plan.Achievable)
	require.Empty(t, plan.Recommended)
	require.Equal(t, 0.0, plan.TotalCost)
}

func TestCompute_UnreachableReturnsPartialPlan(t *testing.T) {
	plan := greenpath.Compute("Fort A", []technology.Record{
		rec("small", "Fort A", 3, 100, score(60)),
		rec("big", "Fort A", 10, 800, score(60)),
		rec("mid", "Fort A", 5, 200, score(60)),
	})
	require.Equal(t, 60.0, plan.CurrentScore)
	require.Equal(t, 20.0, plan.Gap)
	require.False(t, plan.Achievable)
	require.Len(t, plan.Recommended, 3)
	require.Equal(t, "big", plan.Recommended[0].ID)
	require.Equal(t, "mid", plan.Recommended[1].ID)
	require.Equal(t, 3.0, plan.Recommended[2].ContributionToGap)
	require.Equal(t, 18.0, plan.TotalImpact)
	require.Equal(t, 1100.0, plan.TotalCost)
	require.Equal(t, "$1.1M", plan.TotalCostLabel)
}

func TestCompute_StopsOnceGapCovered(t *testing.T) {
	plan := greenpath.Compute("Base B", []technology.Record{
		rec("a", "Base B", 8, 100, score(70)),
		rec("b", "Base B", 4, 100, nil),
		rec("c", "Base B", 8, 100, nil),
	})
	require.Equal(t, 10.0, plan.Gap)
	require.True(t, plan.Achievable)
	require.Len(t, plan.Recommended, 2)
	// equal impacts keep input order
	require.Equal(t, "a", plan.Recommended[0].ID)
	require.Equal(t, "c", plan.Recommended[1].ID)
	require.Equal(t, 8.0, plan.Recommended[0].ContributionToGap)
	require.Equal(t, 2.0, plan.Recommended[1].ContributionToGap)
	require.Equal(t, 200.0, plan.TotalCost)
}

func TestCompute_DefaultScoreWhenMissing(t *testing.T) {
	plan := greenpath.Compute("Camp C", []technology.Record{rec("a", "Camp C", 40, 10, nil)})
	require.Equal(t, greenpath.DefaultScore, plan.CurrentScore)
	require.Equal(t, 30.0, plan.Gap)
	require.True(t, plan.Achievable)
	require.Equal(t, 30.0, plan.Recommended[0].ContributionToGap)
}

func TestCompute_DoesNotReorderInput(t *testing.T) {
	records := []technology.Record{rec("a", "X", 1, 1, nil), rec("b", "X", 9, 1, nil)}
	_ = greenpath.Compute("X", records)
	require.Equal(t, "a", records[0].ID)
}

func TestClassify(t *testing.T) {
	require.Equal(t, greenpath.StandingGreen, greenpath.Classify(80))
	require.Equal(t, greenpath.StandingYellow, greenpath.Classify(50))
	require.Equal(t, greenpath.StandingRed, greenpath.Classify(49.9))
}

func TestSummarize(t *testing.T) {
	records := []technology.Record{
		rec("z1", "Zulu Base", 30, 100, score(40)),
		rec("a1", "alpha post", 5, 100, score(90)),
		rec("z2", "Zulu Base", 20, 100, score(40)),
		rec("z3", "Zulu Base", 20, 100, score(40)),
	}
	list := greenpath.Summarize(records)
	require.Len(t, list, 2)
	require.Equal(t, "alpha post", list[0].Name)
	require.Equal(t, greenpath.StandingGreen, list[0].Standing)
	require.Equal(t, 0, list[0].TechsNeeded)

	zulu := list[1]
	require.Equal(t, 40.0, zulu.Gap)
	require.Equal(t, 3, zulu.Technologies)
	require.Equal(t, 2, zulu.TechsNeeded)
	require.Equal(t, greenpath.StandingRed, zulu.Standing)

	byGap := greenpath.SortSummaries(list, greenpath.SummaryByGap, technology.Desc)
	require.Equal(t, "Zulu Base", byGap[0].Name)
}

func TestSortRecommendations(t *testing.T) {
	plan := greenpath.Compute("X", []technology.Record{
		rec("a", "X", 10, 900, score(40)),
		rec("b", "X", 10, 100, nil),
		rec("c", "X", 10, 500, nil),
	})
	byCost := greenpath.SortRecommendations(plan.Recommended, greenpath.RecommendationByCost, technology.Asc)
	require.Equal(t, []string{"b", "c", "a"}, []string{byCost[0].ID, byCost[1].ID, byCost[2].ID})

	_, err := greenpath.ParseRecommendationKey("color")
	require.ErrorIs(t, err, greenpath.ErrInvalidSortKey)
}
