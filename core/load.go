package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/qmetrics/schema"
)

// missingCell marks a missing value inside a deduplication key.
const missingCell = "\x00"

// LoadDataset reads one CSV per version source, tags every row with its version and a
// per-file sequential ID, concatenates them in configured order and removes exact duplicates.
// Any unreadable file fails the whole load.
func LoadDataset(sources []schema.VersionSource) (schema.LoadResult, error) {
	result := schema.LoadResult{RowsPerTag: make(map[schema.VersionTag]int, len(sources))}
	if len(sources) == 0 {
		return result, errors.New("no version files configured")
	}

	var columns []string
	var rows []schema.MetricRow
	for _, src := range sources {
		header, fileRows, err := readVersionFile(src)
		if err != nil {
			return result, err
		}
		columns = mergeColumns(columns, header)
		rows = append(rows, fileRows...)
		result.RowsPerTag[src.Tag] = len(fileRows)
	}

	result.CombinedRows = len(rows)
	deduped := Deduplicate(columns, rows)
	result.DuplicatesRemoved = len(rows) - len(deduped)
	result.Dataset = schema.Dataset{Columns: columns, Rows: deduped}
	return result, nil
}

// readVersionFile parses a single CSV file into tagged rows.
func readVersionFile(src schema.VersionSource) ([]string, []schema.MetricRow, error) {
	file, err := os.Open(src.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s file %s: %w", src.Tag, src.Path, err)
	}
	defer func() { _ = file.Close() }()

	header, rows, err := parseVersionCSV(file, src.Tag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s file %s: %w", src.Tag, src.Path, err)
	}
	return header, rows, nil
}

// parseVersionCSV reads a header row followed by records. Short records leave
// their trailing columns missing.
func parseVersionCSV(r io.Reader, tag schema.VersionTag) ([]string, []schema.MetricRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []schema.MetricRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse record %d: %w", len(rows)+1, err)
		}
		if len(record) > len(header) {
			return nil, nil, fmt.Errorf("record %d has %d fields, header has %d", len(rows)+1, len(record), len(header))
		}

		cells := make(map[string]string, len(record))
		for i, value := range record {
			cells[header[i]] = strings.TrimSpace(value)
		}
		rows = append(rows, schema.MetricRow{
			Kind:     schema.Kind(cells[schema.KindColumn]),
			Tag:      tag,
			UniqueID: len(rows),
			Cells:    cells,
		})
	}
	return header, rows, nil
}

// mergeColumns appends header columns not yet seen. Tag and unique_id follow the
// first file's own columns.
func mergeColumns(columns, header []string) []string {
	first := len(columns) == 0
	for _, c := range header {
		if c == schema.TagColumn || c == schema.UniqueIDColumn {
			continue
		}
		if !slices.Contains(columns, c) {
			columns = append(columns, c)
		}
	}
	if first {
		columns = append(columns, schema.TagColumn, schema.UniqueIDColumn)
	}
	return columns
}

// Deduplicate removes rows whose values are equal in every column, keeping the first
// occurrence and preserving order.
func Deduplicate(columns []string, rows []schema.MetricRow) []schema.MetricRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]schema.MetricRow, 0, len(rows))
	for _, row := range rows {
		key := rowKey(columns, row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

// rowKey joins every column value of the row. Tag and unique_id are always part of it.
func rowKey(columns []string, row schema.MetricRow) string {
	var b strings.Builder
	b.WriteString(string(row.Tag))
	b.WriteByte('\x1f')
	b.WriteString(strconv.Itoa(row.UniqueID))
	for _, c := range columns {
		if c == schema.TagColumn || c == schema.UniqueIDColumn {
			continue
		}
		b.WriteByte('\x1f')
		if v, ok := row.Cell(c); ok {
			b.WriteString(v)
		} else {
			b.WriteString(missingCell)
		}
	}
	return b.String()
}
