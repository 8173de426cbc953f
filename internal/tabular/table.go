// Package tabular reads and writes the user and task tables as CSV or XLSX
// files so existing spreadsheets can be imported and the store exported.
package tabular

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type format int

const (
	formatCSV format = iota
	formatXLSX
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".xlsx":
		return formatXLSX, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// table is a header plus data rows, every row padded to the header width
type table struct {
	sheet  string
	header []string
	rows   [][]string
}

// record is one data row addressed by column name
type record struct {
	line   int
	values map[string]string
}

func (r record) get(col string) string {
	return strings.TrimSpace(r.values[col])
}

// raw returns the cell exactly as stored
func (r record) raw(col string) string {
	return r.values[col]
}

func readTable(path string, want []string) ([]record, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableAbsent, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var raw [][]string
	switch f {
	case formatCSV:
		raw, err = readCSV(path)
	case formatXLSX:
		raw, err = readXLSX(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTableCorrupt, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrTableCorrupt, path)
	}

	t := table{header: normalizeHeader(raw[0]), rows: raw[1:]}
	index := make(map[string]int, len(t.header))
	for i, name := range t.header {
		index[name] = i
	}
	for _, col := range want {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrTableCorrupt, path, col)
		}
	}

	records := make([]record, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		row = pad(row, len(t.header))
		values := make(map[string]string, len(want))
		for _, col := range want {
			values[col] = row[index[col]]
		}
		// line numbers count the header as line 1
		records = append(records, record{line: i + 2, values: values})
	}
	return records, nil
}

func writeTable(path string, t table) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	switch f {
	case formatXLSX:
		return writeXLSX(path, t)
	default:
		return writeCSV(path, t)
	}
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
