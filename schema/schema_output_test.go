package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRecords(t *testing.T) {
	report := Report{
		Sections: []MetricSection{
			{Metric: CountLineCode, Skipped: true, SkipReason: "not found in data"},
			{
				Metric: PercentLackOfCohesion,
				Trend:  TrendIncreasing,
				Summaries: []StatSummary{
					{Tag: "a", Count: 3, Median: 40},
					{Tag: "b", Count: 2, Median: 90},
				},
				Assessments: []Assessment{
					{Tag: "a", Median: 40, Band: Band{Label: "Good (<50%)"}},
					{Tag: "b", Median: 90, Band: Band{Label: "Poor (>80%)"}},
				},
			},
			{
				Metric:    CountDeclMethod,
				Trend:     TrendStable,
				Summaries: []StatSummary{{Tag: "a", Count: 1, Median: 4}},
			},
		},
	}

	records := SummaryRecords(7, report)
	require.Len(t, records, 3)

	assert.Equal(t, int64(7), records[0].RunID)
	assert.Equal(t, "PercentLackOfCohesion", records[0].Metric)
	require.NotNil(t, records[0].Assessment)
	assert.Equal(t, "Good (<50%)", *records[0].Assessment)
	assert.Equal(t, "increasing", records[1].Trend)
	assert.Nil(t, records[2].Assessment)
	assert.Equal(t, int32(1), records[2].SampleCount)
}

func TestReportAnalyzed(t *testing.T) {
	r := Report{Sections: []MetricSection{{Metric: "a", Skipped: true}, {Metric: "b"}}}
	analyzed := r.Analyzed()
	require.Len(t, analyzed, 1)
	assert.Equal(t, MetricID("b"), analyzed[0].Metric)
}
