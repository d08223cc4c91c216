// Package dataset supplies the product records the catalog store is loaded
// with: an embedded demo catalog by default, or a JSON file supplied by the
// operator.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
)

//go:embed products.json
var embeddedProducts []byte

// Default returns the embedded demo catalog.
func Default() ([]catalog.Product, error) {
	products, err := Parse(embeddedProducts)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset is invalid: %w", err)
	}
	return products, nil
}

// LoadFile reads a product dataset from a JSON file.
func LoadFile(path string) ([]catalog.Product, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset file: %w", err)
	}
	products, err := Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("could not parse dataset file %s: %w", path, err)
	}
	return products, nil
}

// Parse decodes and sanitizes product records. Missing string fields become
// empty strings; records without a usable id or name are dropped rather than
// failing the whole load, since search and formatting tolerate sparse fields.
func Parse(payload []byte) ([]catalog.Product, error) {
	var raw []catalog.Product
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("could not decode product records: %w", err)
	}

	out := make([]catalog.Product, 0, len(raw))
	seen := map[int]struct{}{}
	for _, p := range raw {
		p.Name = strings.TrimSpace(p.Name)
		p.Category = strings.TrimSpace(p.Category)
		p.ActiveIngredient = strings.TrimSpace(p.ActiveIngredient)
		p.Description = strings.TrimSpace(p.Description)
		if p.ID <= 0 || p.Name == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Price < 0 {
			p.Price = 0
		}
		if p.Stock < 0 {
			p.Stock = 0
		}
		out = append(out, p)
	}
	return out, nil
}
