package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Retailer:    "Amazon",
			Category:    "laptops",
			ProductName: "HP Pavilion 15.6-inch",
			Price:       models.FloatPtr(45999),
			Discount:    models.FloatPtr(20),
			URL:         models.StrPtr("https://example.com/p/1"),
			ImageURL:    models.StrPtr("https://example.com/i/1.jpg"),
			Brand:       models.StrPtr("HP"),
			Model:       models.StrPtr("Pavilion"),
			ScreenSize:  models.StrPtr("15.6-inch"),
		},
		{
			Retailer:    "Croma",
			Category:    "mobiles",
			ProductName: "OnePlus 11 Pro 5G",
			Price:       models.FloatPtr(56999.5),
			MRP:         models.FloatPtr(61999),
			Rating:      models.FloatPtr(4.5),
			Reviews:     models.IntPtr(1234),
			ImageURL:    models.StrPtr("https://example.com/i/2.jpg"),
			Brand:       models.StrPtr("OnePlus"),
			Variants:    models.StrPtr("Pro, 5G"),
		},
		// All-optional-nil record apart from the required triple.
		{Retailer: "Flipkart", Category: "mobiles", ProductName: "Unknown Phone"},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "products.json"), filepath.Join(dir, "products.csv"), "")
	ctx := context.Background()

	catalog := sampleCatalog()
	if err := s.Save(ctx, catalog); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, catalog) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, catalog)
	}
}

func TestFileStoreSerializedFormsEquivalent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "products.json")
	csvPath := filepath.Join(dir, "products.csv")
	ctx := context.Background()

	if err := NewFileStore(jsonPath, csvPath, "").Save(ctx, sampleCatalog()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// Read each serialized form in isolation: the row-oriented CSV and
	// the record-oriented JSON must decode to identical catalogs.
	fromJSON, err := NewFileStore(jsonPath, filepath.Join(dir, "absent.csv"), "").Load(ctx)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	fromCSV, err := NewFileStore(filepath.Join(dir, "absent.json"), csvPath, "").Load(ctx)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	if !reflect.DeepEqual(fromJSON, fromCSV) {
		t.Fatalf("serialized forms disagree:\n json %+v\n csv  %+v", fromJSON, fromCSV)
	}
}

func TestFileStoreCleanedPreferred(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "products.json")
	csvPath := filepath.Join(dir, "products.csv")
	cleanedPath := filepath.Join(dir, "products_cleaned.csv")
	ctx := context.Background()

	if err := NewFileStore(jsonPath, csvPath, "").Save(ctx, sampleCatalog()); err != nil {
		t.Fatal(err)
	}
	cleaned := []models.Product{{Retailer: "Amazon", Category: "laptops", ProductName: "Cleaned"}}
	if err := NewFileStore(filepath.Join(dir, "scratch.json"), cleanedPath, "").Save(ctx, cleaned); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewFileStore(jsonPath, csvPath, cleanedPath).Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].ProductName != "Cleaned" {
		t.Fatalf("cleaned catalog not preferred: %+v", loaded)
	}
}

func TestFileStoreNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "none.json"), filepath.Join(dir, "none.csv"), "")

	if _, err := s.Load(context.Background()); !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
	if _, err := s.Version(context.Background()); !errors.Is(err, ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound from Version, got %v", err)
	}
}

func TestFileStoreVersionChangesOnSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "products.json"), filepath.Join(dir, "products.csv"), "")
	ctx := context.Background()

	if err := s.Save(ctx, sampleCatalog()); err != nil {
		t.Fatal(err)
	}
	v1, err := s.Version(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v1 == "" {
		t.Fatal("empty version")
	}
}
