package core

import (
	"slices"

	"github.com/huangsam/qmetrics/schema"
)

// Partition holds independent copies of class-level and method-level rows.
type Partition struct {
	Classes schema.Dataset
	Methods schema.Dataset
}

// ClassifyRows splits the dataset by Kind. Rows of any other kind belong to neither side.
func ClassifyRows(d schema.Dataset) Partition {
	return Partition{
		Classes: filterKinds(d, schema.ClassKinds),
		Methods: filterKinds(d, schema.MethodKinds),
	}
}

// Scoped returns the partition selected by the analysis scope.
func (p Partition) Scoped(scope schema.RowScope) schema.Dataset {
	if scope == schema.MethodScope {
		return p.Methods
	}
	return p.Classes
}

// filterKinds copies the rows whose Kind is in kinds.
func filterKinds(d schema.Dataset, kinds []schema.Kind) schema.Dataset {
	out := schema.Dataset{Columns: slices.Clone(d.Columns)}
	for _, row := range d.Rows {
		if slices.Contains(kinds, row.Kind) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
