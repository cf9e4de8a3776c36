package normalize

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/config"
	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/store"
)

// Full batch-phase round trip: normalize two feeds, merge, persist,
// reload. The reloaded catalog must be field-for-field identical to the
// merged one.
func TestNormalizeMergePersistReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "laptops.csv"),
		"title,price,product_link,img_url\n"+
			"\"HP Pavilion 15.6 inch Intel Core i5 512GB SSD\",\"₹45,999 20% off\",https://e/p/1,https://e/i/1.jpg\n"+
			"Lenovo IdeaPad,\"₹38,490\",https://e/p/2,https://e/i/2.jpg\n")
	writeFile(t, filepath.Join(dir, "mobiles.json"),
		`[{"name": "OnePlus 11 Pro 5G", "price": "₹56,999", "rating": 4.5, "url": "https://e/p/3", "image_url": "https://e/i/3.jpg"}]`)

	cfg := &config.Config{
		DataDir: dir,
		Feeds: []config.FeedConfig{
			{Name: "laptops", Format: "csv", Path: "laptops.csv", Retailer: "Reliance", Category: "laptops", PriceMode: "combined", PriceColumn: "price"},
			{Name: "mobiles", Format: "json", Path: "mobiles.json", Retailer: "Croma", Category: "mobiles", PriceColumn: "price", RatingColumn: "rating"},
		},
	}

	merged, err := Run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(merged) != 3 {
		t.Fatalf("merged %d records, want 3", len(merged))
	}
	// Feed order then intra-feed order.
	if merged[0].Retailer != "Reliance" || merged[2].Retailer != "Croma" {
		t.Fatalf("feed order lost: %s .. %s", merged[0].Retailer, merged[2].Retailer)
	}
	if merged[2].Brand == nil || *merged[2].Brand != "OnePlus" {
		t.Fatalf("attributes not extracted during normalization: %+v", merged[2])
	}

	st := store.NewFileStore(filepath.Join(dir, "products.json"), filepath.Join(dir, "products.csv"), "")
	ctx := context.Background()
	if err := st.Save(ctx, merged); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	reloaded, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(reloaded, merged) {
		t.Fatalf("persisted catalog differs:\n got %+v\nwant %+v", reloaded, merged)
	}
}
