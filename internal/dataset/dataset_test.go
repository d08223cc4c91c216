package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDatasetLoads(t *testing.T) {
	products, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected embedded products")
	}

	hasOutOfStock := false
	for _, p := range products {
		if p.ID <= 0 || p.Name == "" || p.Category == "" {
			t.Fatalf("incomplete embedded product: %+v", p)
		}
		if p.Stock == 0 {
			hasOutOfStock = true
		}
	}
	// The demo catalog must exercise the out-of-stock answer path.
	if !hasOutOfStock {
		t.Fatalf("expected at least one out-of-stock demo product")
	}
}

func TestParseDropsUnusableRecords(t *testing.T) {
	payload := `[
		{"id": 1, "name": "  Paracetamol 500mg ", "category": " Pain Relief ", "price": 4.99, "stock": 10},
		{"id": 0, "name": "no id"},
		{"id": 2, "name": "   "},
		{"id": 3, "name": "Negative", "price": -2.5, "stock": -4}
	]`
	products, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 usable products, got %d", len(products))
	}
	if products[0].Name != "Paracetamol 500mg" || products[0].Category != "Pain Relief" {
		t.Fatalf("expected trimmed fields, got %+v", products[0])
	}
	if products[1].Price != 0 || products[1].Stock != 0 {
		t.Fatalf("expected negative price and stock clamped to zero, got %+v", products[1])
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	payload := `[
		{"id": 1, "name": "First"},
		{"id": 1, "name": "Second"}
	]`
	if _, err := Parse([]byte(payload)); err == nil {
		t.Fatalf("expected duplicate id error")
	} else if !strings.Contains(err.Error(), "duplicate product id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"not": "a list"}`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	payload := `[{"id": 7, "name": "Zinc Lozenges", "category": "Vitamins", "price": 5.4, "stock": 96}]`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	products, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != 7 {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
