package schema

import "time"

// MetricSection is the analysis outcome of one configured metric.
type MetricSection struct {
	Metric          MetricID      `json:"metric"`
	Description     string        `json:"description"`
	Skipped         bool          `json:"skipped"`
	SkipReason      string        `json:"skip_reason,omitempty"`
	Dropped         int           `json:"dropped"`
	Summaries       []StatSummary `json:"summaries,omitempty"`
	Trend           Trend         `json:"trend,omitempty"`
	AssessmentTitle string        `json:"assessment_title,omitempty"`
	AssessmentUnit  string        `json:"assessment_unit,omitempty"`
	Assessments     []Assessment  `json:"assessments,omitempty"`
	ChartPath       string        `json:"chart_path,omitempty"`
	ChartError      string        `json:"chart_error,omitempty"`
}

// Report is the ordered result of one run, consumed by every output writer.
type Report struct {
	RunID             string             `json:"run_id"`
	GeneratedAt       time.Time          `json:"generated_at"`
	Scope             RowScope           `json:"scope"`
	Versions          []VersionSource    `json:"versions"`
	RowsPerTag        map[VersionTag]int `json:"rows_per_tag"`
	CombinedRows      int                `json:"combined_rows"`
	DuplicatesRemoved int                `json:"duplicates_removed"`
	ScopedRows        int                `json:"scoped_rows"`
	Catalog           []MetricDescriptor `json:"catalog"`
	Sections          []MetricSection    `json:"sections"`
}

// Analyzed returns the sections that were not skipped.
func (r Report) Analyzed() []MetricSection {
	var out []MetricSection
	for _, s := range r.Sections {
		if !s.Skipped {
			out = append(out, s)
		}
	}
	return out
}

// AssessmentFor returns the assessment of a tag within the section, if any.
func (s MetricSection) AssessmentFor(tag VersionTag) (Assessment, bool) {
	for _, a := range s.Assessments {
		if a.Tag == tag {
			return a, true
		}
	}
	return Assessment{}, false
}
