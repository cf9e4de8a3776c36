package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
)

// FileStore keeps the catalog in flat files. Save writes both
// serialized forms; Load prefers the cleaned CSV when one exists, then
// the JSON catalog, then the raw CSV.
type FileStore struct {
	JSONPath    string
	CSVPath     string
	CleanedPath string
}

func NewFileStore(jsonPath, csvPath, cleanedPath string) *FileStore {
	return &FileStore{JSONPath: jsonPath, CSVPath: csvPath, CleanedPath: cleanedPath}
}

// Save writes the catalog atomically: each file is fully written to a
// temp name first, then renamed over the old one, so a reader never
// observes a partially-written catalog.
func (s *FileStore) Save(_ context.Context, catalog []models.Product) error {
	raw, err := json.MarshalIndent(catalog, "", "    ")
	if err != nil {
		return fmt.Errorf("encode catalog json: %w", err)
	}
	if err := writeAtomic(s.JSONPath, raw); err != nil {
		return err
	}

	rows, err := encodeCSV(catalog)
	if err != nil {
		return err
	}
	return writeAtomic(s.CSVPath, rows)
}

func (s *FileStore) Load(_ context.Context) ([]models.Product, error) {
	if s.CleanedPath != "" {
		if raw, err := os.ReadFile(s.CleanedPath); err == nil {
			return decodeCSV(raw)
		}
	}
	if raw, err := os.ReadFile(s.JSONPath); err == nil {
		var catalog []models.Product
		if err := json.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("decode catalog json: %w", err)
		}
		return catalog, nil
	}
	if raw, err := os.ReadFile(s.CSVPath); err == nil {
		return decodeCSV(raw)
	}
	return nil, ErrCatalogNotFound
}

// Version is the mtime of whichever file Load would read.
func (s *FileStore) Version(_ context.Context) (string, error) {
	for _, path := range []string{s.CleanedPath, s.JSONPath, s.CSVPath} {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil {
			return fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano()), nil
		}
	}
	return "", ErrCatalogNotFound
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func encodeCSV(catalog []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.Columns); err != nil {
		return nil, err
	}
	for _, p := range catalog {
		if err := w.Write(toRow(p)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeCSV(raw []byte) ([]models.Product, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode catalog csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("decode catalog csv: empty file")
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[col] = i
	}

	catalog := make([]models.Product, 0, len(records)-1)
	for _, rec := range records[1:] {
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		catalog = append(catalog, fromRow(cell))
	}
	return catalog, nil
}

// toRow projects a record onto the canonical column order. Nil fields
// serialize as empty cells, which fromRow maps back to nil; that
// symmetry is what makes the CSV and JSON forms interchangeable.
func toRow(p models.Product) []string {
	return []string{
		p.Retailer, p.Category, p.ProductName,
		floatCell(p.Price), floatCell(p.MRP), floatCell(p.Discount),
		strCell(p.URL), strCell(p.ImageURL),
		floatCell(p.Rating), intCell(p.Reviews),
		strCell(p.Offer), strCell(p.Delivery),
		strCell(p.Brand), strCell(p.Model), strCell(p.Storage), strCell(p.RAM),
		strCell(p.Color), strCell(p.Processor), strCell(p.ScreenSize),
		strCell(p.OS), strCell(p.Variants),
	}
}

func fromRow(cell func(string) string) models.Product {
	return models.Product{
		Retailer:    cell("retailer"),
		Category:    cell("category"),
		ProductName: cell("product_name"),
		Price:       parseFloatCell(cell("price")),
		MRP:         parseFloatCell(cell("mrp")),
		Discount:    parseFloatCell(cell("discount")),
		URL:         parseStrCell(cell("url")),
		ImageURL:    parseStrCell(cell("image_url")),
		Rating:      parseFloatCell(cell("rating")),
		Reviews:     parseIntCell(cell("reviews")),
		Offer:       parseStrCell(cell("offer")),
		Delivery:    parseStrCell(cell("delivery")),
		Brand:       parseStrCell(cell("brand")),
		Model:       parseStrCell(cell("model")),
		Storage:     parseStrCell(cell("storage")),
		RAM:         parseStrCell(cell("ram")),
		Color:       parseStrCell(cell("color")),
		Processor:   parseStrCell(cell("processor")),
		ScreenSize:  parseStrCell(cell("screen_size")),
		OS:          parseStrCell(cell("os")),
		Variants:    parseStrCell(cell("variants")),
	}
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func parseFloatCell(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntCell(s string) *int64 {
	if s == "" {
		return nil
	}
	// Review counts written by other tools sometimes carry a float
	// form ("1234.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}

func parseStrCell(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
