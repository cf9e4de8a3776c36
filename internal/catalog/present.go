package catalog

import "github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"

// Fields always present in a served record, even when empty.
var mandatoryFields = map[string]bool{
	"product_name": true,
	"price":        true,
	"retailer":     true,
	"category":     true,
	"image_url":    true,
}

// Present projects one canonical record into its served form: null
// fields get display defaults, then any field still carrying a
// placeholder is dropped (except the mandatory set). This is purely a
// presentation transformation; the stored catalog keeps its nulls.
func Present(p models.Product) map[string]any {
	out := map[string]any{
		"retailer":     p.Retailer,
		"category":     p.Category,
		"product_name": p.ProductName,
		"price":        floatOr(p.Price, 0),
		"mrp":          floatOr(p.MRP, 0),
		"discount":     floatOr(p.Discount, 0),
		"url":          strOr(p.URL, ""),
		"image_url":    strOr(p.ImageURL, ""),
		"rating":       floatOr(p.Rating, 0),
		"reviews":      intOr(p.Reviews, 0),
		"offer":        strOr(p.Offer, ""),
		"delivery":     strOr(p.Delivery, ""),
		"brand":        strOr(p.Brand, "Unknown"),
		"model":        strOr(p.Model, ""),
		"storage":      strOr(p.Storage, "N/A"),
		"ram":          strOr(p.RAM, "N/A"),
		"color":        strOr(p.Color, ""),
		"processor":    strOr(p.Processor, "N/A"),
		"screen_size":  strOr(p.ScreenSize, ""),
		"os":           strOr(p.OS, ""),
		"variants":     strOr(p.Variants, ""),
		"source":       p.Retailer,
	}

	for key, value := range out {
		if mandatoryFields[key] {
			continue
		}
		if dropValue(key, value) {
			delete(out, key)
		}
	}
	return out
}

// dropValue decides whether a defaulted field carries no information:
// empty strings and "N/A" placeholders always drop; zero only drops for
// rating and reviews (a zero mrp or discount is still shown).
func dropValue(key string, value any) bool {
	switch v := value.(type) {
	case string:
		return v == "" || v == "N/A"
	case float64:
		return v == 0 && (key == "rating" || key == "reviews")
	case int64:
		return v == 0 && (key == "rating" || key == "reviews")
	default:
		return value == nil
	}
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
