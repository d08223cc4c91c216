package config

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Pricing.CheapBelow != 10.0 || cfg.Pricing.PremiumAbove != 25.0 {
		t.Fatalf("unexpected pricing defaults: %+v", cfg.Pricing)
	}
	if cfg.Limits.MaxResults != 5 || cfg.Limits.SweepResults != 3 || cfg.Limits.Featured != 3 {
		t.Fatalf("unexpected limit defaults: %+v", cfg.Limits)
	}
	if cfg.Catalog.CurrencySymbol != "$" {
		t.Fatalf("unexpected currency symbol %q", cfg.Catalog.CurrencySymbol)
	}
	if cfg.Remote.Enabled != nil {
		t.Fatalf("remote consent must start undecided")
	}
	if !cfg.RemoteEnabled() {
		t.Fatalf("undecided consent should not block remote")
	}
}

func TestLoadOrCreateWritesDefaultFile(t *testing.T) {
	isolateHome(t)

	cfg, path, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.Locale != "auto" {
		t.Fatalf("unexpected default locale %q", cfg.Locale)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestSaveAndReload(t *testing.T) {
	isolateHome(t)

	cfg, path, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if err := cfg.Set("locale", "hi"); err != nil {
		t.Fatalf("Set locale failed: %v", err)
	}
	if err := cfg.Set("pricing.cheap_below", "7.5"); err != nil {
		t.Fatalf("Set pricing failed: %v", err)
	}
	if err := cfg.Set("remote.enabled", "false"); err != nil {
		t.Fatalf("Set remote.enabled failed: %v", err)
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, _, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Locale != "hi" {
		t.Fatalf("locale not persisted, got %q", reloaded.Locale)
	}
	if reloaded.Pricing.CheapBelow != 7.5 {
		t.Fatalf("cheap_below not persisted, got %g", reloaded.Pricing.CheapBelow)
	}
	if reloaded.Remote.Enabled == nil || *reloaded.Remote.Enabled {
		t.Fatalf("remote consent decision not persisted: %+v", reloaded.Remote)
	}
}

func TestSaveUsesPrivatePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not portable on windows")
	}
	isolateHome(t)

	cfg, path, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config failed: %v", err)
	}
	if perms := info.Mode().Perm(); perms&0o077 != 0 {
		t.Fatalf("expected private config permissions, got %o", perms)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := Default()
	cases := map[string]string{
		"ui.backend":              "tview",
		"remote.url":              "http://assistant.local/v1",
		"remote.timeout_seconds":  "5",
		"limits.max_results":      "8",
		"limits.sweep_results":    "2",
		"limits.featured":         "4",
		"catalog.currency_symbol": "₹",
		"memory.remember_remote":  "false",
	}
	for key, value := range cases {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("Set(%s, %s) failed: %v", key, value, err)
		}
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", key, err)
		}
		if got != value {
			t.Fatalf("Get(%s) = %q, want %q", key, got, value)
		}
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	cfg := Default()
	invalid := map[string]string{
		"locale":                 "123",
		"ui.backend":             "curses",
		"remote.url":             "",
		"remote.enabled":         "maybe",
		"remote.timeout_seconds": "-1",
		"pricing.cheap_below":    "0",
		"limits.max_results":     "zero",
		"unknown.key":            "x",
	}
	for key, value := range invalid {
		if err := cfg.Set(key, value); err == nil {
			t.Fatalf("expected Set(%s, %s) to fail", key, value)
		}
	}
}

func TestNormalizeRepairsInvertedPricing(t *testing.T) {
	cfg := Default()
	cfg.Pricing.CheapBelow = 30
	cfg.Pricing.PremiumAbove = 5
	cfg.normalize()
	if cfg.Pricing.PremiumAbove < cfg.Pricing.CheapBelow {
		t.Fatalf("expected pricing tiers repaired, got %+v", cfg.Pricing)
	}
}

func TestSetLocaleNormalizes(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("locale", "HI_in.UTF-8"); err != nil {
		t.Fatalf("Set locale failed: %v", err)
	}
	if cfg.Locale != "hi-IN" {
		t.Fatalf("expected normalized locale, got %q", cfg.Locale)
	}
	if err := cfg.Set("locale", "AUTO"); err != nil {
		t.Fatalf("Set auto locale failed: %v", err)
	}
	if !strings.EqualFold(cfg.Locale, "auto") {
		t.Fatalf("expected auto locale, got %q", cfg.Locale)
	}
}
