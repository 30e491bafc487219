package technology

// Status is the legacy lifecycle stage of a technology.
type Status string

const (
	StatusPrototype  Status = "Prototype"
	StatusPlanning   Status = "Planning"
	StatusDeployment Status = "Deployment"
)

// OutreachLevel is the normalized engagement level shown in place of Status.
type OutreachLevel string

const (
	Level1 OutreachLevel = "Level 1"
	Level2 OutreachLevel = "Level 2"
	Level3 OutreachLevel = "Level 3"
	Level4 OutreachLevel = "Level 4"
)

// GapLevel is the categorical urgency of the gap a technology addresses.
type GapLevel string

const (
	GapHigh   GapLevel = "High"
	GapMedium GapLevel = "Medium"
	GapLow    GapLevel = "Low"
)

// Geo is a map position for an installation.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Record is one catalog entry: a candidate technology at an installation.
// Records are read-only once loaded into a Store.
type Record struct {
	ID                      string        `json:"id"`
	Technology              string        `json:"technology"`
	TechnologyDesc          string        `json:"technologyDesc,omitempty"`
	Vendor                  string        `json:"vendor"`
	VendorDesc              string        `json:"vendorDesc,omitempty"`
	Installation            string        `json:"installation"`
	Status                  Status        `json:"status"`
	OutreachLevel           OutreachLevel `json:"outreachLevel,omitempty"`
	Cost                    float64       `json:"cost"`
	TechNeeds               []string      `json:"techNeeds"`
	GapLevel                GapLevel      `json:"gapLevel"`
	ResiliencyImpact        float64       `json:"resiliencyImpact"`
	ExistingResiliencyScore *float64      `json:"existingResiliencyScore,omitempty"`
	Geo                     *Geo          `json:"geo,omitempty"`
}

// View is a record annotated with its derived values for display.
type View struct {
	Record
	Outreach      OutreachLevel `json:"outreach"`
	CostLabel     string        `json:"costLabel"`
	CostPercent   float64       `json:"costPercent"`
	CostPerImpact Efficiency    `json:"costPerImpact"`
}

// NewView derives the display values for a record.
func NewView(rec Record) View {
	return View{
		Record:        rec,
		Outreach:      NormalizeOutreach(rec),
		CostLabel:     FormatCost(rec.Cost),
		CostPercent:   CostToPercent(rec.Cost),
		CostPerImpact: CostPerImpact(rec),
	}
}

// NewViews annotates a slice of records, preserving order.
func NewViews(records []Record) []View {
	views := make([]View, 0, len(records))
	for _, rec := range records {
		views = append(views, NewView(rec))
	}
	return views
}

func cloneRecord(rec Record) Record {
	out := rec
	if rec.TechNeeds != nil {
		out.TechNeeds = append([]string(nil), rec.TechNeeds...)
	}
	if rec.ExistingResiliencyScore != nil {
		score := *rec.ExistingResiliencyScore
		out.ExistingResiliencyScore = &score
	}
	if rec.Geo != nil {
		geo := *rec.Geo
		out.Geo = &geo
	}
	return out
}
