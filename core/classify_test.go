package core

import (
	"testing"

	"github.com/huangsam/qmetrics/schema"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRows(t *testing.T) {
	d := schema.Dataset{
		Columns: []string{"Kind"},
		Rows: []schema.MetricRow{
			{Kind: "Public Class", UniqueID: 0},
			{Kind: "Private Method", UniqueID: 1},
			{Kind: "Private Class", UniqueID: 2},
			{Kind: "Protected Method", UniqueID: 3},
			{Kind: "Public Method", UniqueID: 4},
			{Kind: "Package", UniqueID: 5},
			{Kind: "Public Interface", UniqueID: 6},
		},
	}

	p := ClassifyRows(d)

	assert.Len(t, p.Classes.Rows, 2)
	assert.Len(t, p.Methods.Rows, 3)
	assert.Equal(t, 0, p.Classes.Rows[0].UniqueID)
	assert.Equal(t, 2, p.Classes.Rows[1].UniqueID)

	assert.Equal(t, p.Classes, p.Scoped(schema.ClassScope))
	assert.Equal(t, p.Methods, p.Scoped(schema.MethodScope))

	p.Classes.Columns[0] = "changed"
	assert.Equal(t, "Kind", d.Columns[0], "partitions do not share the source schema")
	assert.Equal(t, "Kind", p.Methods.Columns[0])
}
