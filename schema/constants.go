package schema

// Custom string types for type safety.
type (
	// MetricID is a metric column name produced by the upstream static-analysis tool.
	MetricID string

	// VersionTag labels the software release a row came from.
	VersionTag string

	// Kind is the categorical column distinguishing classes from methods.
	Kind string

	// RowScope selects which partition of the dataset is analyzed.
	RowScope string

	// Trend represents the direction of medians across version tags.
	Trend string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartFormat represents the file format of rendered charts.
	ChartFormat string

	// ChartStyle represents the visual flavor of rendered charts.
	ChartStyle string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// BandLevel represents the severity of an assessment band.
	BandLevel string
)

// Metric identifiers known to the catalog.
const (
	SumCyclomatic         MetricID = "SumCyclomatic"
	AvgEssential          MetricID = "AvgEssential"
	MaxInheritanceTree    MetricID = "MaxInheritanceTree"
	PercentLackOfCohesion MetricID = "PercentLackOfCohesion"
	CountClassDerived     MetricID = "CountClassDerived"
	CountClassCoupled     MetricID = "CountClassCoupled"
	CountDeclMethod       MetricID = "CountDeclMethod"
	CountLineCode         MetricID = "CountLineCode"
)

// Column names with special meaning in the input files.
const (
	KindColumn     = "Kind"
	TagColumn      = "Tag"
	UniqueIDColumn = "unique_id"
)

// All kinds recognized by the classifier.
const (
	PrivateClass    Kind = "Private Class"
	PublicClass     Kind = "Public Class"
	PrivateMethod   Kind = "Private Method"
	PublicMethod    Kind = "Public Method"
	ProtectedMethod Kind = "Protected Method"
)

// All row scopes supported.
const (
	ClassScope  RowScope = "class" // default
	MethodScope RowScope = "method"
)

// All trends supported.
const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All chart formats supported.
const (
	PNGChart  ChartFormat = "png" // default
	SVGChart  ChartFormat = "svg"
	PDFChart  ChartFormat = "pdf"
	HTMLChart ChartFormat = "html"
)

// All chart styles supported.
const (
	BasicStyle    ChartStyle = "basic"
	EnhancedStyle ChartStyle = "enhanced" // default
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Assessment severity levels.
const (
	LevelGood     BandLevel = "good"
	LevelModerate BandLevel = "moderate"
	LevelPoor     BandLevel = "poor"
	LevelLow      BandLevel = "low"
)

// ClassKinds lists the kinds that make up class-level rows.
var ClassKinds = []Kind{PrivateClass, PublicClass}

// MethodKinds lists the kinds that make up method-level rows.
var MethodKinds = []Kind{PrivateMethod, PublicMethod, ProtectedMethod}

// DefaultMetrics is the ordered list of metrics analyzed when none are configured.
var DefaultMetrics = []MetricID{
	SumCyclomatic,
	MaxInheritanceTree,
	PercentLackOfCohesion,
	CountClassDerived,
	CountClassCoupled,
	CountDeclMethod,
	CountLineCode,
}

// DefaultVersions is the ordered tag=file list used when none are configured.
var DefaultVersions = []string{
	"r5.11.4=r5.11.4-filtered.csv",
	"r5.12.0=r5.12.0-filtered.csv",
	"r5.12.1=r5.12.1-filtered.csv",
}

// DiscreteMetrics are integer-valued metrics charted without notches on integer axes.
var DiscreteMetrics = map[MetricID]struct{}{
	MaxInheritanceTree: {},
	CountClassCoupled:  {},
	CountClassDerived:  {},
}

// MissingTokens lists cell values treated as missing.
var MissingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidChartFormats lists all valid chart formats.
var ValidChartFormats = map[ChartFormat]struct{}{
	PNGChart:  {},
	SVGChart:  {},
	PDFChart:  {},
	HTMLChart: {},
}

// ValidChartStyles lists all valid chart styles.
var ValidChartStyles = map[ChartStyle]struct{}{
	BasicStyle:    {},
	EnhancedStyle: {},
}

// ValidRowScopes lists all valid row scopes.
var ValidRowScopes = map[RowScope]struct{}{
	ClassScope:  {},
	MethodScope: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// IsDiscrete reports whether the metric takes only integer values.
func IsDiscrete(metric MetricID) bool {
	_, ok := DiscreteMetrics[metric]
	return ok
}

// IsMissing reports whether a raw cell value counts as missing.
func IsMissing(cell string) bool {
	_, ok := MissingTokens[cell]
	return ok
}
