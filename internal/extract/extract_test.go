package extract

import (
	"strings"
	"testing"
)

func TestExtractEmptyInput(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "   "} {
		attrs := Extract(title)
		if attrs != (AttributeSet{}) {
			t.Fatalf("Extract(%q) = %+v, want all-nil set", title, attrs)
		}
	}
}

func TestExtractBrand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		title     string
		wantBrand string
	}{
		{"leading token", "Samsung Galaxy S23", "Samsung"},
		{"mid-title token", "Galaxy by Samsung S23", "Samsung"},
		{"case-insensitive", "SAMSUNG Galaxy S23", "Samsung"},
		{"vocabulary casing wins", "oneplus 11R", "OnePlus"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := Extract(tc.title)
			if attrs.Brand == nil || *attrs.Brand != tc.wantBrand {
				t.Fatalf("brand = %v, want %q", strDeref(attrs.Brand), tc.wantBrand)
			}
			if attrs.Model != nil && strings.Contains(strings.ToLower(*attrs.Model), strings.ToLower(tc.wantBrand)) {
				t.Fatalf("model %q still contains consumed brand %q", *attrs.Model, tc.wantBrand)
			}
		})
	}
}

func TestExtractBrandNotHyphenated(t *testing.T) {
	t.Parallel()

	// Brand matching is whole-token only; a hyphenated occurrence is
	// deliberately not recognized.
	attrs := Extract("Samsung-Galaxy S23")
	if attrs.Brand != nil {
		t.Fatalf("expected no brand for hyphenated token, got %q", *attrs.Brand)
	}
}

func TestExtractStoragePrecedesRAM(t *testing.T) {
	t.Parallel()

	attrs := Extract("16GB RAM 512GB SSD")
	if attrs.Storage == nil || *attrs.Storage != "512GB SSD" {
		t.Fatalf("storage = %v, want \"512GB SSD\"", strDeref(attrs.Storage))
	}
	if attrs.RAM == nil || *attrs.RAM != "16GB RAM" {
		t.Fatalf("ram = %v, want \"16GB RAM\"", strDeref(attrs.RAM))
	}
}

func TestExtractBareGBFallsToRAM(t *testing.T) {
	t.Parallel()

	// Known ambiguity, preserved: without a disk qualifier the storage
	// pass skips the token and the RAM pass consumes it.
	attrs := Extract("Galaxy A54 128GB Awesome Violet")
	if attrs.Storage != nil {
		t.Fatalf("storage = %q, want nil", *attrs.Storage)
	}
	if attrs.RAM == nil || *attrs.RAM != "128GB" {
		t.Fatalf("ram = %v, want \"128GB\"", strDeref(attrs.RAM))
	}
}

func TestExtractTerabyteStorage(t *testing.T) {
	t.Parallel()

	attrs := Extract("Dell Inspiron 1TB HDD 8GB RAM")
	if attrs.Storage == nil || *attrs.Storage != "1TB HDD" {
		t.Fatalf("storage = %v, want \"1TB HDD\"", strDeref(attrs.Storage))
	}
	if attrs.RAM == nil || *attrs.RAM != "8GB RAM" {
		t.Fatalf("ram = %v, want \"8GB RAM\"", strDeref(attrs.RAM))
	}
}

func TestExtractScreenSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"HP Pavilion 15.6 inch Laptop", "15.6-inch"},
		{"HP Pavilion 15.6-inch Laptop", "15.6-inch"},
	}
	for _, tc := range cases {
		attrs := Extract(tc.title)
		if attrs.ScreenSize == nil || *attrs.ScreenSize != tc.want {
			t.Fatalf("Extract(%q).ScreenSize = %v, want %q", tc.title, strDeref(attrs.ScreenSize), tc.want)
		}
	}
}

func TestExtractProcessorOSColor(t *testing.T) {
	t.Parallel()

	attrs := Extract("Lenovo IdeaPad Intel Core i5 Windows 11 Grey 512GB SSD")
	if attrs.Processor == nil || *attrs.Processor != "Intel Core i5" {
		t.Errorf("processor = %v", strDeref(attrs.Processor))
	}
	if attrs.OS == nil || *attrs.OS != "Windows 11" {
		t.Errorf("os = %v", strDeref(attrs.OS))
	}
	if attrs.Color == nil || *attrs.Color != "Grey" {
		t.Errorf("color = %v", strDeref(attrs.Color))
	}
	if attrs.Brand == nil || *attrs.Brand != "Lenovo" {
		t.Errorf("brand = %v", strDeref(attrs.Brand))
	}
	if attrs.Storage == nil || *attrs.Storage != "512GB SSD" {
		t.Errorf("storage = %v", strDeref(attrs.Storage))
	}
	if attrs.Model == nil || *attrs.Model != "IdeaPad" {
		t.Errorf("model = %v, want \"IdeaPad\"", strDeref(attrs.Model))
	}
}

func TestExtractVariantsMultiMatch(t *testing.T) {
	t.Parallel()

	attrs := Extract("OnePlus 11 Pro 5G")
	if attrs.Brand == nil || *attrs.Brand != "OnePlus" {
		t.Fatalf("brand = %v, want \"OnePlus\"", strDeref(attrs.Brand))
	}
	// All tags collected, joined in vocabulary order.
	if attrs.Variants == nil || *attrs.Variants != "Pro, 5G" {
		t.Fatalf("variants = %v, want \"Pro, 5G\"", strDeref(attrs.Variants))
	}
	// Residual "11" is purely numeric, so no model.
	if attrs.Model != nil {
		t.Fatalf("model = %q, want nil", *attrs.Model)
	}
}

func TestExtractModelResidual(t *testing.T) {
	t.Parallel()

	attrs := Extract("Apple MacBook Air (Midnight, 256GB SSD)")
	if attrs.Brand == nil || *attrs.Brand != "Apple" {
		t.Fatalf("brand = %v", strDeref(attrs.Brand))
	}
	if attrs.Color == nil || *attrs.Color != "Midnight" {
		t.Fatalf("color = %v", strDeref(attrs.Color))
	}
	if attrs.Storage == nil || *attrs.Storage != "256GB SSD" {
		t.Fatalf("storage = %v", strDeref(attrs.Storage))
	}
	// Parentheses and commas are stripped from the residual.
	if attrs.Model == nil || *attrs.Model != "MacBook Air" {
		t.Fatalf("model = %v, want \"MacBook Air\"", strDeref(attrs.Model))
	}
}

func strDeref(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
