package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/askell/medshelf/internal/appdirs"
	"github.com/askell/medshelf/internal/i18n"
	"github.com/pelletier/go-toml/v2"
)

type RemoteConfig struct {
	Enabled        *bool  `toml:"enabled,omitempty" json:"enabled,omitempty"`
	URL            string `toml:"url" json:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds"`
}

// PricingConfig holds the price-tier thresholds the resolver's cheap and
// premium handlers compare against. Catalog tuning, not business logic.
type PricingConfig struct {
	CheapBelow   float64 `toml:"cheap_below" json:"cheap_below"`
	PremiumAbove float64 `toml:"premium_above" json:"premium_above"`
}

type LimitsConfig struct {
	MaxResults   int `toml:"max_results" json:"max_results"`
	SweepResults int `toml:"sweep_results" json:"sweep_results"`
	Featured     int `toml:"featured" json:"featured"`
}

type CatalogConfig struct {
	DatasetPath    string `toml:"dataset_path,omitempty" json:"dataset_path,omitempty"`
	CurrencySymbol string `toml:"currency_symbol" json:"currency_symbol"`
}

type UIConfig struct {
	Backend string `toml:"backend" json:"backend"`
}

type MemoryConfig struct {
	RememberRemote bool `toml:"remember_remote" json:"remember_remote"`
}

type Config struct {
	Version int           `toml:"version" json:"version"`
	Locale  string        `toml:"locale" json:"locale"`
	Remote  RemoteConfig  `toml:"remote" json:"remote"`
	Pricing PricingConfig `toml:"pricing" json:"pricing"`
	Limits  LimitsConfig  `toml:"limits" json:"limits"`
	Catalog CatalogConfig `toml:"catalog" json:"catalog"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Memory  MemoryConfig  `toml:"memory" json:"memory"`
}

func Default() Config {
	return Config{
		Version: 1,
		Locale:  "auto",
		Remote: RemoteConfig{
			// Enabled stays nil until the shopper answers the consent
			// prompt; RemoteEnabled treats nil as allowed.
			URL:            "http://localhost:8787/assistant",
			TimeoutSeconds: 20,
		},
		Pricing: PricingConfig{
			CheapBelow:   10.0,
			PremiumAbove: 25.0,
		},
		Limits: LimitsConfig{
			MaxResults:   5,
			SweepResults: 3,
			Featured:     3,
		},
		Catalog: CatalogConfig{
			CurrencySymbol: "$",
		},
		UI: UIConfig{
			Backend: "auto",
		},
		Memory: MemoryConfig{
			RememberRemote: true,
		},
	}
}

func LoadOrCreate() (Config, string, error) {
	path, err := appdirs.ConfigFilePath()
	if err != nil {
		return Config{}, "", err
	}

	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if _, err := appdirs.EnsureConfigDir(); err != nil {
			return Config{}, "", err
		}
		if err := Save(path, cfg); err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	if err != nil {
		return Config{}, "", fmt.Errorf("could not stat config path: %w", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("could not read config file: %w", err)
	}

	if err := toml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("could not parse config file: %w", err)
	}
	cfg.normalize()
	return cfg, path, nil
}

func Save(path string, cfg Config) error {
	cfg.normalize()
	payload, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	if _, err := appdirs.EnsureConfigDir(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".medshelf-config-*.toml")
	if err != nil {
		return fmt.Errorf("could not create temp config file: %w", err)
	}
	tempPath := tempFile.Name()
	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tempFile.Write(payload); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not write temp config file: %w", err)
	}
	if err := tempFile.Chmod(0o600); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not secure temp config file permissions: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("could not close temp config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return fmt.Errorf("could not atomically replace config file: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("could not secure config file permissions: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	defaults := Default()
	if c.Version == 0 {
		c.Version = defaults.Version
	}
	c.Locale = normalizeLocaleSetting(c.Locale, defaults.Locale)
	if strings.TrimSpace(c.Remote.URL) == "" {
		c.Remote.URL = defaults.Remote.URL
	}
	if c.Remote.TimeoutSeconds <= 0 {
		c.Remote.TimeoutSeconds = defaults.Remote.TimeoutSeconds
	}
	if c.Pricing.CheapBelow <= 0 {
		c.Pricing.CheapBelow = defaults.Pricing.CheapBelow
	}
	if c.Pricing.PremiumAbove <= 0 {
		c.Pricing.PremiumAbove = defaults.Pricing.PremiumAbove
	}
	if c.Pricing.PremiumAbove < c.Pricing.CheapBelow {
		c.Pricing.CheapBelow = defaults.Pricing.CheapBelow
		c.Pricing.PremiumAbove = defaults.Pricing.PremiumAbove
	}
	if c.Limits.MaxResults <= 0 {
		c.Limits.MaxResults = defaults.Limits.MaxResults
	}
	if c.Limits.SweepResults <= 0 {
		c.Limits.SweepResults = defaults.Limits.SweepResults
	}
	if c.Limits.Featured <= 0 {
		c.Limits.Featured = defaults.Limits.Featured
	}
	if strings.TrimSpace(c.Catalog.CurrencySymbol) == "" {
		c.Catalog.CurrencySymbol = defaults.Catalog.CurrencySymbol
	}
	c.UI.Backend = normalizeUIBackend(c.UI.Backend, defaults.UI.Backend)
}

func (c *Config) Set(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)

	switch key {
	case "locale":
		c.Locale = normalizeLocaleSetting(value, "")
		if c.Locale == "" {
			return fmt.Errorf("locale must be 'auto' or a locale like en, en-US, hi, hi-IN")
		}
	case "ui.backend":
		c.UI.Backend = normalizeUIBackend(value, "")
		if c.UI.Backend == "" {
			return fmt.Errorf("ui.backend must be one of auto|bubbletea|huh|tview|plain")
		}
	case "remote.url":
		if value == "" {
			return fmt.Errorf("remote.url cannot be empty")
		}
		c.Remote.URL = value
	case "remote.enabled":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("remote.enabled must be boolean")
		}
		c.Remote.Enabled = boolPtr(b)
	case "remote.timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("remote.timeout_seconds must be a positive number")
		}
		c.Remote.TimeoutSeconds = n
	case "pricing.cheap_below":
		n, err := parsePrice(value)
		if err != nil {
			return fmt.Errorf("pricing.cheap_below must be a positive price")
		}
		c.Pricing.CheapBelow = n
	case "pricing.premium_above":
		n, err := parsePrice(value)
		if err != nil {
			return fmt.Errorf("pricing.premium_above must be a positive price")
		}
		c.Pricing.PremiumAbove = n
	case "limits.max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("limits.max_results must be a positive number")
		}
		c.Limits.MaxResults = n
	case "limits.sweep_results":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("limits.sweep_results must be a positive number")
		}
		c.Limits.SweepResults = n
	case "limits.featured":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("limits.featured must be a positive number")
		}
		c.Limits.Featured = n
	case "catalog.dataset_path":
		c.Catalog.DatasetPath = value
	case "catalog.currency_symbol":
		if value == "" {
			return fmt.Errorf("catalog.currency_symbol cannot be empty")
		}
		c.Catalog.CurrencySymbol = value
	case "memory.remember_remote":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("memory.remember_remote must be boolean")
		}
		c.Memory.RememberRemote = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	c.normalize()
	return nil
}

func (c Config) Get(key string) (string, error) {
	key = strings.TrimSpace(strings.ToLower(key))

	switch key {
	case "locale":
		return c.Locale, nil
	case "ui.backend":
		return c.UI.Backend, nil
	case "remote.url":
		return c.Remote.URL, nil
	case "remote.enabled":
		return strconv.FormatBool(c.RemoteEnabled()), nil
	case "remote.timeout_seconds":
		return fmt.Sprintf("%d", c.Remote.TimeoutSeconds), nil
	case "pricing.cheap_below":
		return fmt.Sprintf("%g", c.Pricing.CheapBelow), nil
	case "pricing.premium_above":
		return fmt.Sprintf("%g", c.Pricing.PremiumAbove), nil
	case "limits.max_results":
		return fmt.Sprintf("%d", c.Limits.MaxResults), nil
	case "limits.sweep_results":
		return fmt.Sprintf("%d", c.Limits.SweepResults), nil
	case "limits.featured":
		return fmt.Sprintf("%d", c.Limits.Featured), nil
	case "catalog.dataset_path":
		return c.Catalog.DatasetPath, nil
	case "catalog.currency_symbol":
		return c.Catalog.CurrencySymbol, nil
	case "memory.remember_remote":
		return strconv.FormatBool(c.Memory.RememberRemote), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func (c Config) RemoteEnabled() bool {
	return c.Remote.Enabled == nil || *c.Remote.Enabled
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool: %s", value)
	}
}

func parsePrice(value string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("price threshold must be positive")
	}
	return n, nil
}

func boolPtr(v bool) *bool {
	b := v
	return &b
}

func normalizeUIBackend(value string, fallback string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "auto", "bubbletea", "huh", "tview", "plain":
		return normalized
	default:
		return strings.ToLower(strings.TrimSpace(fallback))
	}
}

func normalizeLocaleSetting(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = strings.TrimSpace(fallback)
	}
	if strings.EqualFold(trimmed, "auto") {
		return "auto"
	}
	normalized := i18n.NormalizeLocale(trimmed)
	if normalized == "" {
		return ""
	}
	return normalized
}
