package catalog

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoData is returned by Load when the dataset is absent or empty. A store
// in this state must not silently answer queries; callers check HasError.
var ErrNoData = errors.New("no product data available")

type Product struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	ActiveIngredient string  `json:"active_ingredient"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Stock            int     `json:"stock"`
}

// Store owns the full product list loaded once at startup, the derived
// category set, and the mutable current view produced by the last
// Search/FilterByCategory/SortBy call. It is not safe for concurrent use;
// one session drives one store.
type Store struct {
	products   []Product
	categories []string
	view       []Product
	loadErr    error
}

func NewStore() *Store {
	return &Store{loadErr: ErrNoData}
}

// Load populates the full product sequence. The list is immutable afterwards;
// only the derived view and category set are ever recomputed.
func (s *Store) Load(products []Product) error {
	if len(products) == 0 {
		s.products = nil
		s.categories = nil
		s.view = nil
		s.loadErr = ErrNoData
		return s.loadErr
	}
	s.products = append([]Product(nil), products...)
	s.categories = deriveCategories(s.products)
	s.view = append([]Product(nil), s.products...)
	s.loadErr = nil
	return nil
}

func (s *Store) LoadErr() error {
	return s.loadErr
}

func (s *Store) HasError() bool {
	return s.loadErr != nil
}

// Products returns a snapshot of the full catalog in load order.
func (s *Store) Products() []Product {
	return append([]Product(nil), s.products...)
}

// Categories returns the derived distinct category set, lexicographically
// sorted.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

// View returns a snapshot of the current view.
func (s *Store) View() []Product {
	return append([]Product(nil), s.view...)
}

// Search resets the view to the full catalog when the normalized query is
// empty, otherwise to every product whose name, description, active
// ingredient, or category contains the query as a case-insensitive substring.
func (s *Store) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		s.view = append([]Product(nil), s.products...)
		return s.View()
	}
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if productContains(p, q) {
			matched = append(matched, p)
		}
	}
	s.view = matched
	return s.View()
}

// FilterByCategory resets the view for "" or the "all" sentinel, otherwise
// restricts it to an exact (case-sensitive) category match.
func (s *Store) FilterByCategory(category string) []Product {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		s.view = append([]Product(nil), s.products...)
		return s.View()
	}
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == trimmed {
			matched = append(matched, p)
		}
	}
	s.view = matched
	return s.View()
}

// SortBy reorders the current view in place. Keys are "name" and "price";
// any other key leaves the view untouched (a documented no-op, not an error).
// Order is ascending unless "desc".
func (s *Store) SortBy(key, order string) []Product {
	desc := strings.EqualFold(strings.TrimSpace(order), "desc")
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "name":
		sort.SliceStable(s.view, func(i, j int) bool {
			if desc {
				return s.view[i].Name > s.view[j].Name
			}
			return s.view[i].Name < s.view[j].Name
		})
	case "price":
		sort.SliceStable(s.view, func(i, j int) bool {
			if desc {
				return s.view[i].Price > s.view[j].Price
			}
			return s.view[i].Price < s.view[j].Price
		})
	}
	return s.View()
}

// FindFirst returns the first product (in load order) whose name,
// description, or active ingredient contains any of the candidate terms.
func (s *Store) FindFirst(terms []string) (Product, bool) {
	for _, p := range s.products {
		for _, term := range terms {
			if term == "" {
				continue
			}
			if containsFold(p.Name, term) || containsFold(p.Description, term) || containsFold(p.ActiveIngredient, term) {
				return p, true
			}
		}
	}
	return Product{}, false
}

// FindAll returns every product whose selected fields contain any of the
// terms. Fields default to name, description, and active ingredient; withCategory
// widens the sweep to the category field as well.
func (s *Store) FindAll(terms []string, withCategory bool) []Product {
	if len(terms) == 0 {
		return nil
	}
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		for _, term := range terms {
			if term == "" {
				continue
			}
			hit := containsFold(p.Name, term) || containsFold(p.Description, term) || containsFold(p.ActiveIngredient, term)
			if !hit && withCategory {
				hit = containsFold(p.Category, term)
			}
			if hit {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// ByNames returns catalog products whose name contains any of the given
// canonical names, preserving load order.
func (s *Store) ByNames(names []string) []Product {
	if len(names) == 0 {
		return nil
	}
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			lowered = append(lowered, strings.ToLower(trimmed))
		}
	}
	matched := make([]Product, 0, len(lowered))
	for _, p := range s.products {
		for _, name := range lowered {
			if containsFold(p.Name, name) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// InCategory returns all products with an exact category match, without
// touching the current view.
func (s *Store) InCategory(category string) []Product {
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// PricedBelow returns products cheaper than the limit, ascending by price.
func (s *Store) PricedBelow(limit float64) []Product {
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Price < limit {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	return matched
}

// PricedAbove returns products dearer than the limit, descending by price.
func (s *Store) PricedAbove(limit float64) []Product {
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Price > limit {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	return matched
}

func deriveCategories(products []Product) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, p := range products {
		category := strings.TrimSpace(p.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

func productContains(p Product, loweredQuery string) bool {
	return containsFold(p.Name, loweredQuery) ||
		containsFold(p.Description, loweredQuery) ||
		containsFold(p.ActiveIngredient, loweredQuery) ||
		containsFold(p.Category, loweredQuery)
}

// containsFold expects needle already lowercased; absent fields are empty
// strings and never match.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
