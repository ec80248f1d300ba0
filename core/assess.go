package core

import "github.com/huangsam/qmetrics/schema"

// Band returns the first rule band the value matches, or the table default.
func Band(table schema.ThresholdTable, value float64) schema.Band {
	for _, rule := range table.Rules {
		if rule.Matches(value) {
			return rule.Band
		}
	}
	return table.Default
}

// Assess maps each tag's median onto the threshold bands of the table.
func Assess(table schema.ThresholdTable, summaries []schema.StatSummary) []schema.Assessment {
	out := make([]schema.Assessment, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, schema.Assessment{
			Tag:    s.Tag,
			Median: s.Median,
			Band:   Band(table, s.Median),
		})
	}
	return out
}
