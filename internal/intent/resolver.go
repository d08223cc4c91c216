// Package intent maps a normalized shopper query to at most one formatted
// answer. The engine is a fixed-priority, short-circuiting decision list:
// an ordered slice of handlers, each pairing a trigger predicate with a
// catalog lookup. The first handler whose trigger matches and whose lookup
// produces output wins; if none does, the caller falls back to the remote
// assistant. There is no scoring and no ranking anywhere in here, and the
// handler order is a behavioral contract, not an implementation detail:
// availability questions get first refusal before the broader stock and
// search handlers further down the list.
package intent

import (
	"fmt"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
	"github.com/askell/medshelf/internal/format"
	"github.com/askell/medshelf/internal/i18n"
)

// Options carries the catalog-tuning constants the handlers compare against.
type Options struct {
	CheapBelow   float64
	PremiumAbove float64
	MaxResults   int
	SweepResults int
	Featured     int
}

func (o *Options) normalize() {
	if o.CheapBelow <= 0 {
		o.CheapBelow = 10.0
	}
	if o.PremiumAbove <= 0 {
		o.PremiumAbove = 25.0
	}
	if o.MaxResults <= 0 {
		o.MaxResults = format.DefaultMaxResults
	}
	if o.SweepResults <= 0 {
		o.SweepResults = 3
	}
	if o.Featured <= 0 {
		o.Featured = 3
	}
}

// Handler is one rule in the decision list. Match is the cheap trigger
// predicate over the normalized query; Answer runs the lookup and reports
// whether it produced output.
type Handler struct {
	Name   string
	Match  func(query string) bool
	Answer func(query string) (string, bool)
}

type Resolver struct {
	store       *catalog.Store
	fm          *format.Formatter
	cues        i18n.CueCatalog
	msgs        i18n.MessageCatalog
	opts        Options
	stop        map[string]struct{}
	scaffolding map[string]struct{}
	ingredients []ingredientEntry
	categories  []categoryEntry
	conditions  []conditionEntry
	handlers    []Handler
}

func NewResolver(store *catalog.Store, fm *format.Formatter, locale i18n.Catalog, opts Options) *Resolver {
	opts.normalize()
	r := &Resolver{
		store:       store,
		fm:          fm,
		cues:        locale.Cues,
		msgs:        locale.Messages,
		opts:        opts,
		stop:        stopSet(locale.Cues.StopWords),
		scaffolding: stopSet(locale.Cues.Scaffolding),
		ingredients: ingredientTable(),
		categories:  categoryTable(),
		conditions:  conditionTable(),
	}
	r.handlers = []Handler{
		{Name: "availability", Match: r.matchAvailability, Answer: r.answerAvailability},
		{Name: "ingredient", Match: r.matchIngredient, Answer: r.answerIngredient},
		{Name: "category", Match: r.matchCategory, Answer: r.answerCategory},
		{Name: "price-tier", Match: r.matchPrice, Answer: r.answerPrice},
		{Name: "stock-summary", Match: r.matchStock, Answer: r.answerStock},
		{Name: "condition", Match: matchAlways, Answer: r.answerCondition},
		{Name: "search", Match: r.matchFind, Answer: r.answerFind},
		{Name: "recommendation", Match: r.matchRecommend, Answer: r.answerRecommend},
		{Name: "help", Match: r.matchHelp, Answer: r.answerHelp},
		{Name: "fallback-sweep", Match: matchAlways, Answer: r.answerSweep},
	}
	return r
}

// Handlers exposes the decision list for inspection and order tests.
func (r *Resolver) Handlers() []Handler {
	return append([]Handler(nil), r.handlers...)
}

// Resolve evaluates the handlers strictly in order and returns the first
// produced answer. ok=false means no local match: the caller should fall
// back, this is a defined outcome and not an error.
func (r *Resolver) Resolve(query string) (string, bool) {
	q := normalizeQuery(query)
	if q == "" {
		return "", false
	}
	for _, handler := range r.handlers {
		if !handler.Match(q) {
			continue
		}
		if answer, ok := handler.Answer(q); ok {
			return answer, true
		}
	}
	return "", false
}

func matchAlways(string) bool { return true }

// --- 1. availability -------------------------------------------------------

func (r *Resolver) matchAvailability(q string) bool {
	return containsAny(q, r.cues.Availability)
}

func (r *Resolver) answerAvailability(q string) (string, bool) {
	product, found := r.availabilityTarget(q)
	if !found {
		return "", false
	}
	name := r.fm.DisplayName(product)
	if product.Stock > 0 {
		return fmt.Sprintf(r.msgs.InStock, name, product.Stock), true
	}
	return fmt.Sprintf(r.msgs.OutOfStock, name, r.fm.DisplayDescription(product)), true
}

// availabilityTarget resolves which product the shopper is asking about.
// The curated ingredient table goes first so translated ingredient names
// resolve against the English catalog fields; free tokens are the fallback.
func (r *Resolver) availabilityTarget(q string) (catalog.Product, bool) {
	for _, entry := range r.ingredients {
		if _, ok := firstContainedKey(q, entry.Keys); !ok {
			continue
		}
		if matched := r.store.ByNames(entry.Products); len(matched) > 0 {
			return matched[0], true
		}
	}
	stripped := stripPhrases(q, r.cues.Availability)
	terms := tokenize(stripped, 3, r.stop)
	if len(terms) == 0 {
		return catalog.Product{}, false
	}
	return r.store.FindFirst(terms)
}

// --- 2. ingredient ----------------------------------------------------------

func (r *Resolver) matchIngredient(q string) bool {
	return containsAny(q, r.cues.Ingredient)
}

func (r *Resolver) answerIngredient(q string) (string, bool) {
	for _, entry := range r.ingredients {
		key, ok := firstContainedKey(q, entry.Keys)
		if !ok {
			continue
		}
		matched := r.productsForIngredient(entry, key)
		if len(matched) == 0 {
			continue
		}
		return r.fm.Render(matched, r.opts.MaxResults), true
	}

	// No curated entry matched: sweep active ingredients and names with the
	// remaining non-scaffolding words.
	terms := tokenize(q, 3, r.scaffolding)
	if len(terms) == 0 {
		return "", false
	}
	matched := make([]catalog.Product, 0, 4)
	for _, p := range r.store.Products() {
		for _, term := range terms {
			if containsFold(p.ActiveIngredient, term) || containsFold(p.Name, term) {
				matched = append(matched, p)
				break
			}
		}
	}
	if len(matched) == 0 {
		return "", false
	}
	return r.fm.Render(matched, r.opts.MaxResults), true
}

// productsForIngredient collects, in load order, products named in the
// curated entry or whose active ingredient mentions the matched key.
func (r *Resolver) productsForIngredient(entry ingredientEntry, key string) []catalog.Product {
	matched := make([]catalog.Product, 0, len(entry.Products))
	for _, p := range r.store.Products() {
		byName := false
		for _, canonical := range entry.Products {
			if containsFold(p.Name, strings.ToLower(canonical)) {
				byName = true
				break
			}
		}
		if byName || containsFold(p.ActiveIngredient, key) {
			matched = append(matched, p)
		}
	}
	return matched
}

// --- 3. category ------------------------------------------------------------

func (r *Resolver) matchCategory(q string) bool {
	return containsAny(q, r.cues.AllCategories) || containsAny(q, r.cues.Category)
}

func (r *Resolver) answerCategory(q string) (string, bool) {
	if containsAny(q, r.cues.AllCategories) {
		categories := r.store.Categories()
		if len(categories) == 0 {
			return "", false
		}
		return fmt.Sprintf(r.msgs.Categories, strings.Join(categories, ", ")), true
	}
	for _, entry := range r.categories {
		if _, ok := firstContainedKey(q, entry.Keys); !ok {
			continue
		}
		matched := r.store.InCategory(entry.Category)
		if len(matched) == 0 {
			continue
		}
		return r.fm.Render(matched, r.opts.MaxResults), true
	}
	return "", false
}

// --- 4. price tier ----------------------------------------------------------

func (r *Resolver) matchPrice(q string) bool {
	return containsAny(q, r.cues.PriceCheap) ||
		containsAny(q, r.cues.PricePremium) ||
		containsAny(q, r.cues.Price)
}

func (r *Resolver) answerPrice(q string) (string, bool) {
	if containsAny(q, r.cues.PriceCheap) {
		matched := r.store.PricedBelow(r.opts.CheapBelow)
		if len(matched) == 0 {
			return "", false
		}
		return r.msgs.CheapIntro + "\n\n" + r.fm.Render(matched, r.opts.MaxResults), true
	}
	if containsAny(q, r.cues.PricePremium) {
		matched := r.store.PricedAbove(r.opts.PremiumAbove)
		if len(matched) == 0 {
			return "", false
		}
		return r.msgs.PremiumIntro + "\n\n" + r.fm.Render(matched, r.opts.MaxResults), true
	}
	// A bare price/cost cue names no tier; let later handlers have the query.
	return "", false
}

// --- 5. stock summary -------------------------------------------------------

func (r *Resolver) matchStock(q string) bool {
	return containsAny(q, r.cues.Stock)
}

func (r *Resolver) answerStock(q string) (string, bool) {
	products := r.store.Products()
	if len(products) == 0 {
		return "", false
	}
	inStock := make([]catalog.Product, 0, len(products))
	outCount := 0
	for _, p := range products {
		if p.Stock > 0 {
			inStock = append(inStock, p)
		} else {
			outCount++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, r.msgs.StockSummary, len(inStock), outCount)
	for _, p := range inStock {
		fmt.Fprintf(&b, "\n- %s (%d)", r.fm.DisplayName(p), p.Stock)
	}
	return b.String(), true
}

// --- 6. health condition ----------------------------------------------------

func (r *Resolver) answerCondition(q string) (string, bool) {
	for _, entry := range r.conditions {
		key, ok := firstContainedKey(q, entry.Keys)
		if !ok {
			continue
		}
		matched := r.store.ByNames(entry.Products)
		if len(matched) == 0 {
			continue
		}
		intro := fmt.Sprintf(r.msgs.ConditionIntro, key)
		return intro + "\n\n" + r.fm.Render(matched, r.opts.MaxResults), true
	}
	return "", false
}

// --- 7. free-text search ----------------------------------------------------

func (r *Resolver) matchFind(q string) bool {
	return containsAny(q, r.cues.Find)
}

func (r *Resolver) answerFind(q string) (string, bool) {
	stripped := stripPhrases(q, r.cues.Find)
	terms := tokenize(stripped, 3, nil)
	if len(terms) == 0 {
		return "", false
	}
	matched := r.store.FindAll(terms, false)
	if len(matched) == 0 {
		return "", false
	}
	return r.fm.Render(matched, r.opts.MaxResults), true
}

// --- 8. recommendation ------------------------------------------------------

func (r *Resolver) matchRecommend(q string) bool {
	return containsAny(q, r.cues.Recommend)
}

func (r *Resolver) answerRecommend(string) (string, bool) {
	featured := r.store.Products()
	if len(featured) == 0 {
		return "", false
	}
	if len(featured) > r.opts.Featured {
		featured = featured[:r.opts.Featured]
	}
	return r.msgs.Recommend + "\n\n" + r.fm.Render(featured, r.opts.Featured), true
}

// --- 9. help ----------------------------------------------------------------

func (r *Resolver) matchHelp(q string) bool {
	return containsAny(q, r.cues.Help)
}

func (r *Resolver) answerHelp(string) (string, bool) {
	return r.msgs.Help, true
}

// --- 10. generic fallback sweep ---------------------------------------------

func (r *Resolver) answerSweep(q string) (string, bool) {
	terms := tokenize(q, 3, nil)
	if len(terms) == 0 {
		return "", false
	}
	matched := r.store.FindAll(terms, true)
	if len(matched) == 0 {
		return "", false
	}
	return r.fm.Render(matched, r.opts.SweepResults), true
}

// --- helpers ----------------------------------------------------------------

func firstContainedKey(q string, keys []string) (string, bool) {
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if strings.Contains(q, key) {
			return key, true
		}
	}
	return "", false
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
