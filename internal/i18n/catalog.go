package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/askell/medshelf/internal/appdirs"
)

// Catalog carries the locale-dependent material the rule engine and the
// formatter consume: trigger cue sets per intent, user-facing message
// templates, and optional product display translations.
type Catalog struct {
	Locale   string          `json:"locale"`
	Cues     CueCatalog      `json:"cues"`
	Messages MessageCatalog  `json:"messages"`
	Products ProductOverlays `json:"products"`
}

// CueCatalog holds the trigger phrases per intent handler. Slices merge on
// locale fallback, so a Hindi catalog keeps the English cues underneath it.
type CueCatalog struct {
	Availability  []string `json:"availability"`
	Ingredient    []string `json:"ingredient"`
	Category      []string `json:"category"`
	AllCategories []string `json:"all_categories"`
	PriceCheap    []string `json:"price_cheap"`
	PricePremium  []string `json:"price_premium"`
	Price         []string `json:"price"`
	Stock         []string `json:"stock"`
	Find          []string `json:"find"`
	Recommend     []string `json:"recommend"`
	Help          []string `json:"help"`
	StopWords     []string `json:"stop_words"`
	Scaffolding   []string `json:"scaffolding"`
}

// MessageCatalog holds the response templates. Non-empty overrides win on
// merge; templates use fmt verbs in the documented argument order.
type MessageCatalog struct {
	InStock        string `json:"in_stock"`        // name, quantity
	OutOfStock     string `json:"out_of_stock"`    // name, description
	StockAvailable string `json:"stock_available"` // quantity
	StockEmpty     string `json:"stock_empty"`
	Categories     string `json:"categories"`    // joined list
	StockSummary   string `json:"stock_summary"` // in count, out count
	Recommend      string `json:"recommend"`
	CheapIntro     string `json:"cheap_intro"`
	PremiumIntro   string `json:"premium_intro"`
	ConditionIntro string `json:"condition_intro"` // condition key
	Help           string `json:"help"`
	Advisory       string `json:"advisory"`
	CatalogDown    string `json:"catalog_down"`
}

// ProductOverlays maps product ids (JSON object keys, so strings) to
// translated display strings. Missing entries fall back to the raw fields.
type ProductOverlays struct {
	Names        map[string]string `json:"names"`
	Descriptions map[string]string `json:"descriptions"`
}

func LoadCatalog(requestedLocale string) Catalog {
	locale := ""
	if !strings.EqualFold(strings.TrimSpace(requestedLocale), "auto") {
		locale = NormalizeLocale(requestedLocale)
	}
	if locale == "" {
		locale = DetectLocale()
	}
	if locale == "" {
		locale = "en"
	}
	base := baseCatalogForLocale(locale)

	if override, ok := loadCommunityCatalog(locale); ok {
		merged := mergeCatalog(base, override)
		if strings.TrimSpace(override.Locale) != "" {
			merged.Locale = NormalizeLocale(override.Locale)
		} else {
			merged.Locale = locale
		}
		return merged
	}

	base.Locale = locale
	return base
}

func baseCatalogForLocale(locale string) Catalog {
	normalized := strings.ToLower(NormalizeLocale(locale))
	switch {
	case strings.HasPrefix(normalized, "hi"):
		// Hindi overrides on top, English cues retained underneath.
		base := mergeCatalog(defaultEnglishCatalog(), defaultHindiCatalog())
		base.Locale = "hi"
		return base
	default:
		base := defaultEnglishCatalog()
		base.Locale = "en"
		return base
	}
}

func DetectLocale() string {
	candidates := []string{
		os.Getenv("MEDSHELF_LOCALE"),
		os.Getenv("LC_ALL"),
		os.Getenv("LC_MESSAGES"),
		os.Getenv("LANG"),
	}
	for _, candidate := range candidates {
		if normalized := NormalizeLocale(candidate); normalized != "" {
			return normalized
		}
	}
	return "en"
}

func NormalizeLocale(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.Split(trimmed, ".")[0]
	trimmed = strings.Split(trimmed, "@")[0]
	trimmed = strings.ReplaceAll(trimmed, "_", "-")

	parts := strings.Split(trimmed, "-")
	if len(parts) == 1 {
		lang := strings.ToLower(parts[0])
		if !isValidLocaleToken(lang, true) {
			return ""
		}
		return lang
	}
	lang := strings.ToLower(parts[0])
	region := strings.ToUpper(parts[1])
	if !isValidLocaleToken(lang, true) {
		return ""
	}
	if region == "" {
		return lang
	}
	if !isValidLocaleToken(strings.ToLower(region), false) {
		return ""
	}
	return lang + "-" + region
}

func isValidLocaleToken(token string, lettersOnly bool) bool {
	if len(token) < 2 || len(token) > 8 {
		return false
	}
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if !lettersOnly && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func loadCommunityCatalog(locale string) (Catalog, bool) {
	localesDir, err := appdirs.LocalesDir()
	if err != nil {
		return Catalog{}, false
	}

	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return Catalog{}, false
	}
	lang := normalized
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}

	paths := []string{
		filepath.Join(localesDir, normalized+".json"),
	}
	if lang != normalized {
		paths = append(paths, filepath.Join(localesDir, lang+".json"))
	}

	for _, path := range paths {
		loaded, ok := loadCatalogFile(path)
		if ok {
			return loaded, true
		}
	}
	return Catalog{}, false
}

func loadCatalogFile(path string) (Catalog, bool) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, false
	}
	var catalog Catalog
	if err := json.Unmarshal(payload, &catalog); err != nil {
		return Catalog{}, false
	}
	return catalog, true
}

func mergeCatalog(base Catalog, override Catalog) Catalog {
	merged := base

	merged.Cues.Availability = mergeStringSlices(base.Cues.Availability, override.Cues.Availability)
	merged.Cues.Ingredient = mergeStringSlices(base.Cues.Ingredient, override.Cues.Ingredient)
	merged.Cues.Category = mergeStringSlices(base.Cues.Category, override.Cues.Category)
	merged.Cues.AllCategories = mergeStringSlices(base.Cues.AllCategories, override.Cues.AllCategories)
	merged.Cues.PriceCheap = mergeStringSlices(base.Cues.PriceCheap, override.Cues.PriceCheap)
	merged.Cues.PricePremium = mergeStringSlices(base.Cues.PricePremium, override.Cues.PricePremium)
	merged.Cues.Price = mergeStringSlices(base.Cues.Price, override.Cues.Price)
	merged.Cues.Stock = mergeStringSlices(base.Cues.Stock, override.Cues.Stock)
	merged.Cues.Find = mergeStringSlices(base.Cues.Find, override.Cues.Find)
	merged.Cues.Recommend = mergeStringSlices(base.Cues.Recommend, override.Cues.Recommend)
	merged.Cues.Help = mergeStringSlices(base.Cues.Help, override.Cues.Help)
	merged.Cues.StopWords = mergeStringSlices(base.Cues.StopWords, override.Cues.StopWords)
	merged.Cues.Scaffolding = mergeStringSlices(base.Cues.Scaffolding, override.Cues.Scaffolding)

	merged.Messages = mergeMessages(base.Messages, override.Messages)
	merged.Products = mergeOverlays(base.Products, override.Products)

	return merged
}

func mergeMessages(base MessageCatalog, override MessageCatalog) MessageCatalog {
	pick := func(base, override string) string {
		if strings.TrimSpace(override) != "" {
			return override
		}
		return base
	}
	return MessageCatalog{
		InStock:        pick(base.InStock, override.InStock),
		OutOfStock:     pick(base.OutOfStock, override.OutOfStock),
		StockAvailable: pick(base.StockAvailable, override.StockAvailable),
		StockEmpty:     pick(base.StockEmpty, override.StockEmpty),
		Categories:     pick(base.Categories, override.Categories),
		StockSummary:   pick(base.StockSummary, override.StockSummary),
		Recommend:      pick(base.Recommend, override.Recommend),
		CheapIntro:     pick(base.CheapIntro, override.CheapIntro),
		PremiumIntro:   pick(base.PremiumIntro, override.PremiumIntro),
		ConditionIntro: pick(base.ConditionIntro, override.ConditionIntro),
		Help:           pick(base.Help, override.Help),
		Advisory:       pick(base.Advisory, override.Advisory),
		CatalogDown:    pick(base.CatalogDown, override.CatalogDown),
	}
}

func mergeOverlays(base ProductOverlays, override ProductOverlays) ProductOverlays {
	merged := ProductOverlays{
		Names:        map[string]string{},
		Descriptions: map[string]string{},
	}
	for id, name := range base.Names {
		merged.Names[id] = name
	}
	for id, name := range override.Names {
		if strings.TrimSpace(name) != "" {
			merged.Names[id] = name
		}
	}
	for id, desc := range base.Descriptions {
		merged.Descriptions[id] = desc
	}
	for id, desc := range override.Descriptions {
		if strings.TrimSpace(desc) != "" {
			merged.Descriptions[id] = desc
		}
	}
	return merged
}

func mergeStringSlices(base []string, override []string) []string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	seen := map[string]struct{}{}
	merged := make([]string, 0, len(base)+len(override))
	appendUnique := func(items []string) {
		for _, item := range items {
			trimmed := strings.TrimSpace(item)
			if trimmed == "" {
				continue
			}
			if _, exists := seen[trimmed]; exists {
				continue
			}
			seen[trimmed] = struct{}{}
			merged = append(merged, trimmed)
		}
	}
	appendUnique(base)
	appendUnique(override)
	return merged
}
