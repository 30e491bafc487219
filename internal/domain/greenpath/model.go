package greenpath

import "github.com/rpggio/resiliency/internal/domain/technology"

const (
	// TargetScore is the resiliency score regarded as green.
	TargetScore = 80.0
	// DefaultScore is assumed when an installation has no recorded score.
	DefaultScore = 50.0
	// YellowScore is the lower bound of the yellow band.
	YellowScore = 50.0
)

// Standing is the traffic-light classification of an installation.
type Standing string

const (
	StandingGreen  Standing = "Green"
	StandingYellow Standing = "Yellow"
	StandingRed    Standing = "Red"
)

// Recommendation is one technology in a gap-to-green plan.
type Recommendation struct {
	technology.View
	ContributionToGap float64 `json:"contributionToGap"`
}

// Plan is the greedy path for one installation to reach the target score.
type Plan struct {
	Installation     string           `json:"installation"`
	CurrentScore     float64          `json:"currentScore"`
	TargetScore      float64          `json:"targetScore"`
	Gap              float64          `json:"gap"`
	Recommended      []Recommendation `json:"recommendedTechs"`
	Achievable       bool             `json:"achievable"`
	TotalImpact      float64          `json:"totalImpact"`
	TotalCost        float64          `json:"totalCost"`
	TotalCostLabel   string           `json:"totalCostLabel"`
	AvailableRecords int              `json:"availableRecords"`
}

// InstallationSummary is one row of the installation overview.
type InstallationSummary struct {
	Name          string              `json:"name"`
	ExistingScore float64             `json:"existingScore"`
	Gap           float64             `json:"gapToGreen"`
	GapLevel      technology.GapLevel `json:"gapLevel"`
	Technologies  int                 `json:"technologies"`
	TechsNeeded   int                 `json:"techsNeeded"`
	Standing      Standing            `json:"status"`
}
