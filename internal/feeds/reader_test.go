package feeds

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCSVReader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feed.csv")
	content := "title,price,image_url\nGalaxy S23,74999,https://e/i.jpg\nPixel 8,,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	columns, rows, err := CSVReader{}.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !reflect.DeepEqual(columns, []string{"title", "price", "image_url"}) {
		t.Fatalf("columns = %v", columns)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0]["price"] != "74999" {
		t.Fatalf("price cell = %v", rows[0]["price"])
	}
	// Empty cells read back as nil, like absent JSON fields.
	if rows[1]["price"] != nil || rows[1]["image_url"] != nil {
		t.Fatalf("empty cells should be nil: %v", rows[1])
	}
}

func TestJSONReaderPreservesColumnOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feed.json")
	content := `[
		{"Title": "Galaxy S23", "price": 74999.0, "rating": 4.5},
		{"Title": "Pixel 8", "price": null, "link": "https://e/p"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	columns, rows, err := JSONReader{}.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	// First-seen order across the array, new keys appended.
	if !reflect.DeepEqual(columns, []string{"Title", "price", "rating", "link"}) {
		t.Fatalf("columns = %v", columns)
	}
	if rows[0]["price"] != 74999.0 {
		t.Fatalf("price = %v", rows[0]["price"])
	}
	if rows[1]["price"] != nil {
		t.Fatalf("null should decode to nil, got %v", rows[1]["price"])
	}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	if _, err := ForFormat("csv"); err != nil {
		t.Fatal(err)
	}
	if _, err := ForFormat("json"); err != nil {
		t.Fatal(err)
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
