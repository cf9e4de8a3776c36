package extract

import "regexp"

// Closed vocabularies for title matching. List order encodes priority:
// the linear scan stops at the first hit (except variants, which collect
// every hit), so more specific entries must come before generic ones.

var brands = []string{
	"Apple", "Samsung", "HP", "Dell", "Lenovo", "Asus", "Acer", "Poco", "Realme",
	"Xiaomi", "Vivo", "Oppo", "OnePlus", "Redmi", "Nokia", "Motorola", "Sony",
	"Honor", "Google", "LG",
}

var colors = compileTerms(
	"Black", "White", "Silver", "Gold", "Grey", "Blue", "Red", "Green", "Purple",
	"Pink", "Yellow", "Midnight", "Starlight", "Phantom", "Space", "Sierra",
	"Cosmic", "Rose", "Graphite", "Ocean", "Sky",
)

var processors = compileTerms(
	"Intel Core i3", "Intel Core i5", "Intel Core i7", "Intel Core i9",
	"AMD Ryzen 3", "AMD Ryzen 5", "AMD Ryzen 7", "Apple M1", "Apple M2",
	"Snapdragon 8 Gen 1", "Snapdragon 8 Gen 2", "Snapdragon 778G",
	"Dimensity 9200", "Dimensity 8200", "A16 Bionic", "A15 Bionic",
	"Exynos 2100", "Kirin 9000",
)

var operatingSystems = compileTerms(
	"Windows 11", "Windows 10", "macOS Ventura", "macOS Monterey", "Android 13",
	"Android 12", "Chrome OS", "iOS 16", "iOS 15",
)

var variantTags = compileTerms(
	"Pro", "Ultra", "5G", "4G", "Gaming", "2-in-1", "Max", "Plus", "Slim",
	"Edge", "Note", "Book",
)

// term pairs a canonical vocabulary label with its whole-word,
// case-insensitive matcher.
type term struct {
	label string
	re    *regexp.Regexp
}

func compileTerms(labels ...string) []term {
	terms := make([]term, 0, len(labels))
	for _, label := range labels {
		terms = append(terms, term{
			label: label,
			re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\b`),
		})
	}
	return terms
}
