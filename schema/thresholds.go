package schema

// CompareOp is the comparison applied by a band rule.
type CompareOp string

// Supported comparisons. Both are strict.
const (
	Above CompareOp = ">"
	Below CompareOp = "<"
)

// Band is one qualitative label of a threshold table.
type Band struct {
	Label string    `json:"label"`
	Level BandLevel `json:"level"`
}

// BandRule assigns Band when the value compares strictly against Cutoff.
type BandRule struct {
	Op     CompareOp
	Cutoff float64
	Band   Band
}

// ThresholdTable maps a median onto ordered bands. Rules are evaluated in order
// and the first match wins; Default applies when none match.
type ThresholdTable struct {
	Metric  MetricID
	Title   string
	Unit    string
	Rules   []BandRule
	Default Band
}

// Thresholds holds the fixed rule-of-thumb tables.
var Thresholds = map[MetricID]ThresholdTable{
	MaxInheritanceTree: {
		Metric: MaxInheritanceTree,
		Title:  "DIT Assessment",
		Rules: []BandRule{
			{Op: Above, Cutoff: 6, Band: Band{Label: "Too high (>6)", Level: LevelPoor}},
			{Op: Below, Cutoff: 2, Band: Band{Label: "Too low (<2)", Level: LevelLow}},
		},
		Default: Band{Label: "Optimal (2-6)", Level: LevelGood},
	},
	PercentLackOfCohesion: {
		Metric: PercentLackOfCohesion,
		Title:  "LCOM Assessment",
		Unit:   "%",
		Rules: []BandRule{
			{Op: Above, Cutoff: 80, Band: Band{Label: "Poor (>80%)", Level: LevelPoor}},
			{Op: Above, Cutoff: 50, Band: Band{Label: "Moderate (50-80%)", Level: LevelModerate}},
		},
		Default: Band{Label: "Good (<50%)", Level: LevelGood},
	},
	SumCyclomatic: {
		Metric: SumCyclomatic,
		Title:  "Cyclomatic Complexity Assessment",
		Rules: []BandRule{
			{Op: Above, Cutoff: 50, Band: Band{Label: "High (>50)", Level: LevelPoor}},
			{Op: Above, Cutoff: 20, Band: Band{Label: "Moderate (20-50)", Level: LevelModerate}},
		},
		Default: Band{Label: "Low (<20)", Level: LevelGood},
	},
}

// Matches reports whether value satisfies the rule.
func (r BandRule) Matches(value float64) bool {
	switch r.Op {
	case Above:
		return value > r.Cutoff
	case Below:
		return value < r.Cutoff
	default:
		return false
	}
}
