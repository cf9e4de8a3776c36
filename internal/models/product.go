package models

// Product is the canonical, retailer-agnostic record for one listing.
// Optional fields are pointers so a missing value survives the JSON/CSV
// round trip as null rather than collapsing to a zero value.
type Product struct {
	Retailer    string   `json:"retailer"`
	Category    string   `json:"category"`
	ProductName string   `json:"product_name"`
	Price       *float64 `json:"price"`
	MRP         *float64 `json:"mrp"`
	Discount    *float64 `json:"discount"`
	URL         *string  `json:"url"`
	ImageURL    *string  `json:"image_url"`
	Rating      *float64 `json:"rating"`
	Reviews     *int64   `json:"reviews"`
	Offer       *string  `json:"offer"`
	Delivery    *string  `json:"delivery"`
	Brand       *string  `json:"brand"`
	Model       *string  `json:"model"`
	Storage     *string  `json:"storage"`
	RAM         *string  `json:"ram"`
	Color       *string  `json:"color"`
	Processor   *string  `json:"processor"`
	ScreenSize  *string  `json:"screen_size"`
	OS          *string  `json:"os"`
	Variants    *string  `json:"variants"`
}

// Columns is the canonical column order shared by the CSV store and the
// normalizer's projection step.
var Columns = []string{
	"retailer", "category", "product_name", "price", "mrp", "discount", "url",
	"image_url", "rating", "reviews", "offer", "delivery", "brand", "model",
	"storage", "ram", "color", "processor", "screen_size", "os", "variants",
}

// Categories served by the query engine. Records outside this set are
// dropped at serve time, not at normalization time.
var Categories = []string{"laptops", "mobiles"}

func StrPtr(s string) *string     { return &s }
func FloatPtr(f float64) *float64 { return &f }
func IntPtr(i int64) *int64       { return &i }
