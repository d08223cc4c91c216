// Package format renders matched products into the text blocks the assistant
// replies with. Display strings come through injected hooks so localization
// and currency formatting stay outside the core.
package format

import (
	"fmt"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
)

const DefaultMaxResults = 5

// Hooks supplies optional display capabilities. A nil hook, or a hook
// returning an empty string, falls back to the raw product fields and the
// built-in currency rendering.
type Hooks struct {
	Name     func(productID int) string
	Describe func(productID int) string
	Price    func(amount float64) string
}

type Formatter struct {
	hooks          Hooks
	currencySymbol string
	stockAvailable string // fmt template taking the quantity
	stockEmpty     string
}

// Option mutates a Formatter at construction.
type Option func(*Formatter)

func WithHooks(hooks Hooks) Option {
	return func(f *Formatter) { f.hooks = hooks }
}

func WithCurrencySymbol(symbol string) Option {
	return func(f *Formatter) {
		if strings.TrimSpace(symbol) != "" {
			f.currencySymbol = symbol
		}
	}
}

func WithStockPhrases(available, empty string) Option {
	return func(f *Formatter) {
		if strings.TrimSpace(available) != "" {
			f.stockAvailable = available
		}
		if strings.TrimSpace(empty) != "" {
			f.stockEmpty = empty
		}
	}
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		currencySymbol: "$",
		stockAvailable: "In stock: %d available",
		stockEmpty:     "Currently out of stock",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render joins up to max product blocks with a blank-line separator. A max
// of zero or less falls back to DefaultMaxResults.
func (f *Formatter) Render(products []catalog.Product, max int) string {
	if max <= 0 {
		max = DefaultMaxResults
	}
	if len(products) > max {
		products = products[:max]
	}
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		blocks = append(blocks, f.Block(p))
	}
	return strings.Join(blocks, "\n\n")
}

// Block renders one product: name and price, description, stock phrase.
func (f *Formatter) Block(p catalog.Product) string {
	lines := make([]string, 0, 3)
	lines = append(lines, fmt.Sprintf("%s — %s", f.DisplayName(p), f.FormatPrice(p.Price)))
	if desc := f.DisplayDescription(p); desc != "" {
		lines = append(lines, desc)
	}
	lines = append(lines, f.StockPhrase(p))
	return strings.Join(lines, "\n")
}

func (f *Formatter) DisplayName(p catalog.Product) string {
	if f.hooks.Name != nil {
		if name := strings.TrimSpace(f.hooks.Name(p.ID)); name != "" {
			return name
		}
	}
	return p.Name
}

func (f *Formatter) DisplayDescription(p catalog.Product) string {
	if f.hooks.Describe != nil {
		if desc := strings.TrimSpace(f.hooks.Describe(p.ID)); desc != "" {
			return desc
		}
	}
	return p.Description
}

func (f *Formatter) FormatPrice(amount float64) string {
	if f.hooks.Price != nil {
		if price := strings.TrimSpace(f.hooks.Price(amount)); price != "" {
			return price
		}
	}
	return fmt.Sprintf("%s%.2f", f.currencySymbol, amount)
}

func (f *Formatter) StockPhrase(p catalog.Product) string {
	if p.Stock > 0 {
		return fmt.Sprintf(f.stockAvailable, p.Stock)
	}
	return f.stockEmpty
}
