package i18n

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("MEDSHELF_LOCALE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	return home
}

func TestNormalizeLocale(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en-US"},
		{"en_us", "en-US"},
		{"hi_IN.UTF-8", "hi-IN"},
		{"hi@devanagari", "hi"},
		{"", ""},
		{"1", ""},
		{"!!", ""},
	}
	for _, c := range cases {
		if got := NormalizeLocale(c.in); got != c.want {
			t.Fatalf("NormalizeLocale(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDetectLocalePrefersAppVariable(t *testing.T) {
	isolateHome(t)
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("MEDSHELF_LOCALE", "hi")
	if got := DetectLocale(); got != "hi" {
		t.Fatalf("expected MEDSHELF_LOCALE to win, got %q", got)
	}
}

func TestDetectLocaleFallsBackToEnglish(t *testing.T) {
	isolateHome(t)
	if got := DetectLocale(); got != "en" {
		t.Fatalf("expected en fallback, got %q", got)
	}
}

func TestLoadCatalogAutoDetectsFromEnvironment(t *testing.T) {
	isolateHome(t)
	t.Setenv("MEDSHELF_LOCALE", "hi_IN.UTF-8")
	catalog := LoadCatalog("auto")
	if catalog.Locale != "hi-IN" {
		t.Fatalf("auto locale resolved to %q, want hi-IN", catalog.Locale)
	}
	if catalog.Messages.InStock == defaultEnglishCatalog().Messages.InStock {
		t.Fatalf("auto mode kept English messages despite Hindi environment")
	}
}

func TestLoadCatalogEnglishDefaults(t *testing.T) {
	isolateHome(t)
	catalog := LoadCatalog("en")
	if catalog.Locale != "en" {
		t.Fatalf("unexpected locale %q", catalog.Locale)
	}
	if len(catalog.Cues.Availability) == 0 {
		t.Fatalf("expected availability cues")
	}
	if catalog.Messages.InStock == "" || catalog.Messages.Advisory == "" {
		t.Fatalf("expected message templates to be populated")
	}
}

func TestLoadCatalogHindiMergesEnglishCues(t *testing.T) {
	isolateHome(t)
	catalog := LoadCatalog("hi")
	if catalog.Locale != "hi" {
		t.Fatalf("unexpected locale %q", catalog.Locale)
	}

	hasEnglish := false
	hasHindi := false
	for _, cue := range catalog.Cues.Availability {
		if cue == "do you have" {
			hasEnglish = true
		}
		if cue == "क्या आपके पास" {
			hasHindi = true
		}
	}
	if !hasEnglish || !hasHindi {
		t.Fatalf("expected merged cue sets, got %v", catalog.Cues.Availability)
	}

	// Messages take the Hindi text wholesale.
	if catalog.Messages.StockEmpty == "Currently out of stock" {
		t.Fatalf("expected hindi stock message, got %q", catalog.Messages.StockEmpty)
	}
}

func TestLoadCatalogRegionVariantUsesLanguageBase(t *testing.T) {
	isolateHome(t)
	catalog := LoadCatalog("hi-IN")
	if catalog.Messages.InStock != defaultHindiCatalog().Messages.InStock {
		t.Fatalf("expected hi-IN to resolve to hindi defaults")
	}
}

func TestCommunityOverrideWins(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on XDG config layout")
	}
	home := isolateHome(t)

	localesDir := filepath.Join(home, ".config", "medshelf", "locales")
	if err := os.MkdirAll(localesDir, 0o700); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	override := `{
		"locale": "en",
		"cues": {"availability": ["do u have"]},
		"messages": {"in_stock": "Sure, %s is here — %d left."}
	}`
	if err := os.WriteFile(filepath.Join(localesDir, "en.json"), []byte(override), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	catalog := LoadCatalog("en")
	if catalog.Messages.InStock != "Sure, %s is here — %d left." {
		t.Fatalf("expected override message, got %q", catalog.Messages.InStock)
	}
	// Overrides extend cue sets; they never wipe the defaults.
	hasDefault := false
	hasOverride := false
	for _, cue := range catalog.Cues.Availability {
		if cue == "do you have" {
			hasDefault = true
		}
		if cue == "do u have" {
			hasOverride = true
		}
	}
	if !hasDefault || !hasOverride {
		t.Fatalf("expected merged availability cues, got %v", catalog.Cues.Availability)
	}
	// Untouched messages keep their defaults.
	if catalog.Messages.Advisory != defaultEnglishCatalog().Messages.Advisory {
		t.Fatalf("expected default advisory to survive the merge")
	}
}

func TestMalformedCommunityFileIsIgnored(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on XDG config layout")
	}
	home := isolateHome(t)

	localesDir := filepath.Join(home, ".config", "medshelf", "locales")
	if err := os.MkdirAll(localesDir, 0o700); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	if err := os.WriteFile(filepath.Join(localesDir, "en.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	catalog := LoadCatalog("en")
	if catalog.Messages.InStock != defaultEnglishCatalog().Messages.InStock {
		t.Fatalf("expected defaults when the override file is unreadable")
	}
}
