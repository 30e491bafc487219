// Package analytics derives the synthetic indicators shown on the analytics
// panel. Indicators are estimates built from catalog fields plus bounded
// jitter; the jitter is seeded per record so results are reproducible.
package analytics

import (
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Profile is a record with its synthetic indicators. Scores are 0-100,
// money is in $M.
type Profile struct {
	technology.View
	Risk                      float64 `json:"risk"`
	CostEfficiency            float64 `json:"costEfficiency"`
	TimeToDevelop             float64 `json:"timeToDevelop"`
	ResiliencyImpactPotential float64 `json:"resiliencyImpactPotential"`
	CriticalGapsAddressed     float64 `json:"criticalGapsAddressed"`
	Capex                     float64 `json:"capex"`
	Opex                      float64 `json:"opex"`
	NPV                       float64 `json:"npv"`
	TechMaturity              float64 `json:"techMaturity"`
	MarketViability           float64 `json:"marketViability"`
	SuppliersReliability      float64 `json:"suppliersReliability"`
}

// Enricher computes profiles with a fixed seed.
type Enricher struct {
	seed uint64
}

// NewEnricher returns an enricher. Equal seeds give equal profiles.
func NewEnricher(seed uint64) *Enricher {
	return &Enricher{seed: seed}
}

// Enrich profiles every record, preserving order.
func (e *Enricher) Enrich(records []technology.Record) []Profile {
	out := make([]Profile, 0, len(records))
	for _, rec := range records {
		out = append(out, e.Profile(rec))
	}
	return out
}

// Profile computes the indicators for one record.
func (e *Enricher) Profile(rec technology.Record) Profile {
	j := jitter{rand.New(rand.NewPCG(e.seed, hashID(rec.ID)))}
	level := technology.NormalizeOutreach(rec)

	capexBase := rec.Cost/1000 + 0.5
	opexBase := rec.Cost/10000 + 0.1

	return Profile{
		View:                      technology.NewView(rec),
		Risk:                      clampScore(gapBase(rec.GapLevel, 70, 50, 30) + j.spread(20)),
		CostEfficiency:            clampScore(100 - technology.CostToPercent(rec.Cost) + j.spread(15)),
		TimeToDevelop:             clampScore(maturityBase(level) + j.spread(20)),
		ResiliencyImpactPotential: clampScore(rec.ResiliencyImpact*7 + j.spread(10)),
		CriticalGapsAddressed:     clampScore(gapBase(rec.GapLevel, 80, 60, 40) + j.spread(20)),
		Capex:                     money(math.Max(0, capexBase+j.spread(1))),
		Opex:                      money(math.Max(0, opexBase+j.spread(0.2))),
		NPV:                       money(capexBase*1.5 - opexBase*5 + j.spread(2)),
		TechMaturity:              clampScore(maturityBase(level) + j.spread(15)),
		MarketViability:           clampScore(60 + rec.ResiliencyImpact*3 + j.spread(15)),
		SuppliersReliability:      clampScore(70 + j.spread(20)),
	}
}

type jitter struct {
	r *rand.Rand
}

// spread returns a value uniformly drawn from [-width/2, width/2).
func (j jitter) spread(width float64) float64 {
	return j.r.Float64()*width - width/2
}

func hashID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}

func gapBase(level technology.GapLevel, high, medium, low float64) float64 {
	switch level {
	case technology.GapHigh:
		return high
	case technology.GapMedium:
		return medium
	default:
		return low
	}
}

func maturityBase(level technology.OutreachLevel) float64 {
	switch level {
	case technology.Level4:
		return 80
	case technology.Level3:
		return 65
	case technology.Level2:
		return 50
	default:
		return 30
	}
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func money(v float64) float64 {
	return math.Round(v*100) / 100
}
