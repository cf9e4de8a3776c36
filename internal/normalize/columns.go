package normalize

import (
	"fmt"
	"strings"
)

// Candidate column names per semantic field. Retailer exports never
// agree on naming, so each canonical field is located by trying a list
// of known aliases.
var (
	nameCandidates  = []string{"title", "name", "product_title", "product_name", "item_name"}
	urlCandidates   = []string{"url", "product_url", "link", "product_link", "web_url"}
	imageCandidates = []string{"image_url", "image", "img_url", "picture_url"}
)

// SchemaError reports a required column that could not be located in a
// feed. It is fatal to that feed's normalization but must not abort
// other feeds.
type SchemaError struct {
	Feed       string
	Field      string
	Candidates []string
	Columns    []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feed %s: no %s column found, expected one of %v, got %v",
		e.Feed, e.Field, e.Candidates, e.Columns)
}

// findColumn locates the first candidate present in columns. Exact
// matches are tried in candidate order first; failing that, the first
// column (in source order) whose lowercase form matches any candidate
// wins.
func findColumn(columns, candidates []string) (string, bool) {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	for _, cand := range candidates {
		if present[cand] {
			return cand, true
		}
	}

	lowered := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		lowered[strings.ToLower(cand)] = true
	}
	for _, col := range columns {
		if lowered[strings.ToLower(col)] {
			return col, true
		}
	}
	return "", false
}

// productNameColumn is the one required lookup: a listing without a
// name column cannot be identified at all. URL and image lookups
// degrade to a nil field instead.
func productNameColumn(feed string, columns []string) (string, error) {
	col, ok := findColumn(columns, nameCandidates)
	if !ok {
		return "", &SchemaError{Feed: feed, Field: "product name", Candidates: nameCandidates, Columns: columns}
	}
	return col, nil
}
