// Package parse holds the total field parsers used during feed
// normalization. Every parser accepts arbitrary free text and returns a
// nil pointer instead of an error when nothing usable is found;
// unparseable price or rating text is data loss, not a failure.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// First run of digits with optional thousands separators and a
	// decimal part, e.g. "₹45,999.00" -> "45,999.00".
	priceRe = regexp.MustCompile(`(\d[\d,]*(\.\d+)?)`)
	// Percent token anywhere in the string, e.g. "20% off" -> "20".
	discountRe = regexp.MustCompile(`(\d+)%`)
)

// Price extracts the first numeric run from a price string. Currency
// symbols and thousands separators are tolerated.
func Price(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// PriceAndDiscount handles feeds that pack both values into a single
// cell ("₹45,999 20% off"). The two extractions are independent: either
// may be nil while the other is set.
func PriceAndDiscount(text string) (*float64, *float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	return Price(text), Discount(text)
}

// Discount isolates a "<digits>%" token.
func Discount(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	m := discountRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// Number coerces a cell that is supposed to be numeric already (ratings,
// review counts). Unlike Price it does not fish digits out of
// surrounding text: "4.3 stars" is not a number.
func Number(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Integer is Number truncated to an integer count (review totals).
func Integer(value any) *int64 {
	f := Number(value)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}
