package schema

// MetricDescriptor pairs a metric identifier with its human-readable label.
type MetricDescriptor struct {
	ID          MetricID `json:"id"`
	Description string   `json:"description"`
}

// Catalog is the static ordered list of known metrics.
var Catalog = []MetricDescriptor{
	{SumCyclomatic, "Total cyclomatic complexity (Sum CC)"},
	{AvgEssential, "Average essential complexity (Avg. EC)"},
	{MaxInheritanceTree, "Depth of inheritance tree (DIT)"},
	{PercentLackOfCohesion, "Lack of cohesion (LCOM)"},
	{CountClassDerived, "Number of children (NOC)"},
	{CountClassCoupled, "Coupling between objects (CBO)"},
	{CountDeclMethod, "Weighted methods per class (WMC)"},
	{CountLineCode, "Source lines of code (SLOC)"},
}

// Describe returns the catalog description for a metric, or the identifier itself
// when the metric is not cataloged.
func Describe(metric MetricID) string {
	for _, d := range Catalog {
		if d.ID == metric {
			return d.Description
		}
	}
	return string(metric)
}
