package analytics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// CapexBuckets counts profiles per capex band in $M.
type CapexBuckets struct {
	Under1    int `json:"under1"`
	From1To5  int `json:"from1To5"`
	From5To10 int `json:"from5To10"`
	Over10    int `json:"over10"`
}

// Summary aggregates a set of profiles.
type Summary struct {
	Count                   int            `json:"count"`
	AvgCapex                float64        `json:"avgCapex"`
	AvgOpex                 float64        `json:"avgOpex"`
	AvgNPV                  float64        `json:"avgNpv"`
	TotalCapex              float64        `json:"totalCapex"`
	Capex                   CapexBuckets   `json:"capexBuckets"`
	AvgTechMaturity         float64        `json:"avgTechMaturity"`
	AvgMarketViability      float64        `json:"avgMarketViability"`
	AvgSuppliersReliability float64        `json:"avgSuppliersReliability"`
	AvgResiliencyImpact     float64        `json:"avgResiliencyImpact"`
	StatusCounts            map[string]int `json:"statusCounts"`
	OutreachCounts          map[string]int `json:"outreachCounts"`
	GapLevelCounts          map[string]int `json:"gapLevelCounts"`
}

// Summarize aggregates profiles. An empty input yields zero averages.
func Summarize(profiles []Profile) Summary {
	s := Summary{
		Count:          len(profiles),
		StatusCounts:   map[string]int{},
		OutreachCounts: map[string]int{},
		GapLevelCounts: map[string]int{},
	}
	if len(profiles) == 0 {
		return s
	}

	n := len(profiles)
	capex := make([]float64, n)
	opex := make([]float64, n)
	npv := make([]float64, n)
	maturity := make([]float64, n)
	viability := make([]float64, n)
	reliability := make([]float64, n)
	impact := make([]float64, n)

	for i, p := range profiles {
		capex[i], opex[i], npv[i] = p.Capex, p.Opex, p.NPV
		maturity[i], viability[i], reliability[i] = p.TechMaturity, p.MarketViability, p.SuppliersReliability
		impact[i] = p.ResiliencyImpact

		switch {
		case p.Capex < 1:
			s.Capex.Under1++
		case p.Capex < 5:
			s.Capex.From1To5++
		case p.Capex < 10:
			s.Capex.From5To10++
		default:
			s.Capex.Over10++
		}
		s.StatusCounts[string(p.Status)]++
		s.OutreachCounts[string(p.Outreach)]++
		s.GapLevelCounts[string(p.GapLevel)]++
	}

	s.AvgCapex = stat.Mean(capex, nil)
	s.AvgOpex = stat.Mean(opex, nil)
	s.AvgNPV = stat.Mean(npv, nil)
	s.TotalCapex = floats.Sum(capex)
	s.AvgTechMaturity = stat.Mean(maturity, nil)
	s.AvgMarketViability = stat.Mean(viability, nil)
	s.AvgSuppliersReliability = stat.Mean(reliability, nil)
	s.AvgResiliencyImpact = stat.Mean(impact, nil)
	return s
}

// Top returns at most n profiles from the front, for the radar chart.
func Top(profiles []Profile, n int) []Profile {
	if n < 0 {
		n = 0
	}
	if len(profiles) < n {
		n = len(profiles)
	}
	return profiles[:n]
}

// Analyze enriches and summarizes in one step.
func (e *Enricher) Analyze(records []technology.Record, top int) Report {
	profiles := e.Enrich(records)
	return Report{
		Summary:  Summarize(profiles),
		Profiles: profiles,
		Radar:    Top(profiles, top),
	}
}

// Report is the analytics panel payload.
type Report struct {
	Summary  Summary   `json:"summary"`
	Profiles []Profile `json:"profiles"`
	Radar    []Profile `json:"radar"`
}
