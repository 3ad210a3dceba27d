package models

// NeedLevel is the qualitative band of an industry's mean need share.
type NeedLevel int

const (
	LevelRelativelyLow NeedLevel = iota
	LevelAboveAverage
	LevelVeryHigh
)

// String returns the human readable description of the level
func (l NeedLevel) String() string {
	switch l {
	case LevelVeryHigh:
		return "very high need"
	case LevelAboveAverage:
		return "somewhat above average"
	case LevelRelativelyLow:
		return "relatively low"
	default:
		return "unknown"
	}
}

// IndustrySummary holds the aggregated shares for one industry
type IndustrySummary struct {
	Industry   string
	MeanNeed   float64
	MeanNoNeed float64
	Rows       int
	Level      NeedLevel
}
