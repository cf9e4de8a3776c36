// Package feeds reads raw retailer exports. Whether a feed started life
// as a spreadsheet or a scraped JSON dump is irrelevant downstream: a
// reader produces an ordered column list plus loosely-typed rows, and
// the normalizer works only on that shape.
package feeds

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// Row is one raw record, keyed by source column name. Values are
// whatever the transport carried: string, float64, bool or nil.
type Row map[string]any

// Reader fetches one feed as an ordered record sequence. Column order
// is preserved from the source because the column reconciler's
// case-insensitive fallback picks the first matching column.
type Reader interface {
	Read(path string) (columns []string, rows []Row, err error)
}

// ForFormat resolves a reader by the format name used in the feed
// descriptor table.
func ForFormat(format string) (Reader, error) {
	switch format {
	case "csv":
		return CSVReader{}, nil
	case "json":
		return JSONReader{}, nil
	default:
		return nil, fmt.Errorf("unknown feed format %q", format)
	}
}

// CSVReader reads a header-first CSV export. Empty cells become nil so
// they behave like absent JSON fields.
type CSVReader struct{}

func (CSVReader) Read(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read csv %s: no header row", path)
	}

	columns := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i >= len(rec) || rec[i] == "" {
				row[col] = nil
				continue
			}
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// JSONReader reads an array of flat objects. Column order is the order
// keys are first seen across the array, which mirrors how the exports
// are written.
type JSONReader struct{}

func (JSONReader) Read(path string) ([]string, []Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var objects []json.RawMessage
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, nil, fmt.Errorf("read json %s: %w", path, err)
	}

	var columns []string
	seen := make(map[string]bool)
	rows := make([]Row, 0, len(objects))
	for i, obj := range objects {
		keys, row, err := decodeObject(obj)
		if err != nil {
			return nil, nil, fmt.Errorf("read json %s: record %d: %w", path, i, err)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// decodeObject unmarshals one object while recovering its key order,
// which encoding/json maps discard.
func decodeObject(raw json.RawMessage) ([]string, Row, error) {
	row := Row{}
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, nil, err
		}
	}
	return keys, row, nil
}
