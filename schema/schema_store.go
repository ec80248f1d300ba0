package schema

// SummaryRecords flattens the analyzed sections of a report into history rows.
func SummaryRecords(runID int64, r Report) []SummaryRecord {
	var records []SummaryRecord
	for _, s := range r.Analyzed() {
		for _, sum := range s.Summaries {
			rec := SummaryRecord{
				RunID:       runID,
				Metric:      string(s.Metric),
				Tag:         string(sum.Tag),
				SampleCount: int32(sum.Count),
				Median:      sum.Median,
				Q1:          sum.Q1,
				Q3:          sum.Q3,
				Min:         sum.Min,
				Max:         sum.Max,
				Mean:        sum.Mean,
				Std:         sum.Std,
				Trend:       string(s.Trend),
			}
			if a, ok := s.AssessmentFor(sum.Tag); ok {
				label := a.Band.Label
				rec.Assessment = &label
			}
			records = append(records, rec)
		}
	}
	return records
}
