package technology

import (
	"encoding/json"
	"fmt"
	"math"
)

// CostCeiling is the top of the cost scale in thousands ($10M).
const CostCeiling = 10000.0

// FormatCost renders a cost in thousands as $X.XM or $XK.
func FormatCost(thousands float64) string {
	if thousands >= 1000 {
		return fmt.Sprintf("$%.1fM", thousands/1000)
	}
	return fmt.Sprintf("$%.0fK", math.Round(thousands))
}

// PercentToCost converts a 0-100 range position into thousands.
func PercentToCost(percent float64) float64 {
	return percent / 100 * CostCeiling
}

// CostToPercent places a cost on the 0-100 scale, clamped at both ends.
func CostToPercent(thousands float64) float64 {
	p := thousands / CostCeiling * 100
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Efficiency is cost per point of resiliency impact. It is not applicable
// when the impact is zero or negative.
type Efficiency struct {
	Value      float64
	Applicable bool
}

// CostPerImpact divides cost by resiliency impact, guarding against zero.
func CostPerImpact(rec Record) Efficiency {
	if rec.ResiliencyImpact <= 0 {
		return Efficiency{}
	}
	return Efficiency{Value: rec.Cost / rec.ResiliencyImpact, Applicable: true}
}

// String renders the value or N/A.
func (e Efficiency) String() string {
	if !e.Applicable {
		return "N/A"
	}
	return FormatCost(e.Value)
}

// MarshalJSON encodes a number, or the string "N/A" when not applicable.
func (e Efficiency) MarshalJSON() ([]byte, error) {
	if !e.Applicable {
		return json.Marshal("N/A")
	}
	return json.Marshal(e.Value)
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (e *Efficiency) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*e = Efficiency{Value: v, Applicable: true}
		return nil
	}
	*e = Efficiency{}
	return nil
}
