package technology

var statusOutreach = map[Status]OutreachLevel{
	StatusPrototype:  Level1,
	StatusPlanning:   Level2,
	StatusDeployment: Level4,
}

// NormalizeOutreach returns the record's outreach level, deriving it from the
// legacy status when absent. Unknown or missing statuses map to Level 3.
func NormalizeOutreach(rec Record) OutreachLevel {
	if IsOutreachLevel(string(rec.OutreachLevel)) {
		return rec.OutreachLevel
	}
	if level, ok := statusOutreach[rec.Status]; ok {
		return level
	}
	return Level3
}

// IsOutreachLevel reports whether v names one of the four levels.
func IsOutreachLevel(v string) bool {
	switch OutreachLevel(v) {
	case Level1, Level2, Level3, Level4:
		return true
	}
	return false
}

// OutreachRank orders levels 1 through 4.
func OutreachRank(level OutreachLevel) int {
	switch level {
	case Level1:
		return 1
	case Level2:
		return 2
	case Level4:
		return 4
	default:
		return 3
	}
}

// GapRank orders gap levels Low < Medium < High. Unknown levels rank 0.
func GapRank(level GapLevel) int {
	switch level {
	case GapLow:
		return 1
	case GapMedium:
		return 2
	case GapHigh:
		return 3
	default:
		return 0
	}
}
