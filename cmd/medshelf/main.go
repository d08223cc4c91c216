package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/askell/medshelf/internal/assistant"
	"github.com/askell/medshelf/internal/catalog"
	"github.com/askell/medshelf/internal/config"
	"github.com/askell/medshelf/internal/dataset"
	"github.com/askell/medshelf/internal/format"
	"github.com/askell/medshelf/internal/i18n"
	"github.com/askell/medshelf/internal/intent"
	"github.com/askell/medshelf/internal/memory"
	"github.com/askell/medshelf/internal/remote"
	"github.com/askell/medshelf/internal/ui"
)

var version = "dev"

type options struct {
	Locale     string
	UI         string
	Dataset    string
	Set        multiFlag
	Save       bool
	JSON       bool
	Offline    bool
	Browse     bool
	ShowConfig bool
	Version    bool
}

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty --set value")
	}
	*m = append(*m, value)
	return nil
}

type response struct {
	Query      string `json:"query,omitempty"`
	Answer     string `json:"answer,omitempty"`
	Source     string `json:"source,omitempty"`
	Message    string `json:"message,omitempty"`
	ConfigPath string `json:"config_path,omitempty"`
}

func main() {
	opts, query, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println(version)
		return
	}

	cfg, cfgPath, err := config.LoadOrCreate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: could not load config: %v\n", err)
		os.Exit(1)
	}

	changes, err := parseSetChanges(opts.Set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: %v\n", err)
		os.Exit(2)
	}
	mergeFlagOverrides(opts, changes)
	for key, value := range changes {
		if err := cfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "medshelf: invalid config change %s=%s: %v\n", key, value, err)
			os.Exit(1)
		}
	}
	if opts.Save && len(changes) > 0 {
		if err := config.Save(cfgPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "medshelf: could not save config: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.ShowConfig {
		handleShowConfig(cfg, cfgPath, opts.JSON)
		return
	}
	if opts.Save && len(changes) > 0 && query == "" && !opts.Browse {
		printResponse(response{Message: "saved settings", ConfigPath: cfgPath}, opts.JSON)
		return
	}

	locale := i18n.LoadCatalog(cfg.Locale)
	formatter := format.New(
		format.WithHooks(overlayHooks(locale.Products)),
		format.WithCurrencySymbol(cfg.Catalog.CurrencySymbol),
		format.WithStockPhrases(locale.Messages.StockAvailable, locale.Messages.StockEmpty),
	)

	store := catalog.NewStore()
	if products, loadErr := loadProducts(cfg); loadErr != nil {
		fmt.Fprintf(os.Stderr, "medshelf: catalog load failed: %v\n", loadErr)
	} else if err := store.Load(products); err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: catalog load failed: %v\n", err)
	}

	backend := ui.DetectBackend(cfg.UI.Backend)
	if opts.JSON {
		backend = ui.BackendPlain
	}

	if opts.Browse {
		if store.HasError() {
			fmt.Fprintln(os.Stderr, locale.Messages.CatalogDown)
			os.Exit(1)
		}
		if err := ui.BrowseProducts(backend, store.Products(), formatter); err != nil {
			fmt.Fprintf(os.Stderr, "medshelf: browse failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	resolver := intent.NewResolver(store, formatter, locale, intent.Options{
		CheapBelow:   cfg.Pricing.CheapBelow,
		PremiumAbove: cfg.Pricing.PremiumAbove,
		MaxResults:   cfg.Limits.MaxResults,
		SweepResults: cfg.Limits.SweepResults,
		Featured:     cfg.Limits.Featured,
	})

	asst := buildAssistant(&cfg, cfgPath, store, resolver, locale, backend, opts)

	if query != "" {
		answer := asst.Ask(context.Background(), query)
		printResponse(response{Query: query, Answer: answer.Text, Source: string(answer.Source)}, opts.JSON)
		return
	}

	session := ui.ChatSession{
		Title:    "medshelf",
		Greeting: locale.Messages.Help,
		Prompt:   "ask about products, prices or stock",
		Ask: func(q string) (string, string) {
			answer := asst.Ask(context.Background(), q)
			return answer.Text, string(answer.Source)
		},
	}
	if err := ui.RunChat(backend, session); err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: chat failed: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, string, error) {
	fs := flag.NewFlagSet("medshelf", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts options
	fs.StringVar(&opts.Locale, "locale", "", "override locale: auto|en|en-US|hi|hi-IN")
	fs.StringVar(&opts.UI, "ui", "", "override ui backend: auto|bubbletea|huh|tview|plain")
	fs.StringVar(&opts.Dataset, "dataset", "", "load the product catalog from this JSON file")
	fs.Var(&opts.Set, "set", "config change key=value (repeatable)")
	fs.BoolVar(&opts.Save, "save", false, "persist overrides")
	fs.BoolVar(&opts.JSON, "json", false, "output JSON")
	fs.BoolVar(&opts.Offline, "offline", false, "never contact the remote assistant")
	fs.BoolVar(&opts.Browse, "browse", false, "browse the product catalog instead of asking")
	fs.BoolVar(&opts.ShowConfig, "show-config", false, "show effective settings and exit")
	fs.BoolVar(&opts.Version, "version", false, "print version")

	if err := fs.Parse(args); err != nil {
		return options{}, "", err
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	return opts, query, nil
}

func parseSetChanges(pairs []string) (map[string]string, error) {
	changes := map[string]string{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", pair)
		}
		changes[key] = value
	}
	return changes, nil
}

func mergeFlagOverrides(opts options, changes map[string]string) {
	if strings.TrimSpace(opts.Locale) != "" {
		changes["locale"] = strings.TrimSpace(opts.Locale)
	}
	if strings.TrimSpace(opts.UI) != "" {
		changes["ui.backend"] = strings.TrimSpace(opts.UI)
	}
	if strings.TrimSpace(opts.Dataset) != "" {
		changes["catalog.dataset_path"] = strings.TrimSpace(opts.Dataset)
	}
	if opts.Offline {
		changes["remote.enabled"] = "false"
	}
}

func loadProducts(cfg config.Config) ([]catalog.Product, error) {
	if path := strings.TrimSpace(cfg.Catalog.DatasetPath); path != "" {
		return dataset.LoadFile(path)
	}
	return dataset.Default()
}

func buildAssistant(
	cfg *config.Config,
	cfgPath string,
	store *catalog.Store,
	resolver *intent.Resolver,
	locale i18n.Catalog,
	backend string,
	opts options,
) *assistant.Assistant {
	asstOpts := []assistant.Option{}

	if answers, path, err := memory.Load(); err == nil {
		asstOpts = append(asstOpts, assistant.WithAnswerMemory(&answers, path, cfg.Memory.RememberRemote))
	} else {
		fmt.Fprintf(os.Stderr, "medshelf: answer memory unavailable: %v\n", err)
	}

	if !opts.Offline && remoteAllowed(cfg, cfgPath, backend, opts) {
		timeout := time.Duration(cfg.Remote.TimeoutSeconds) * time.Second
		client := remote.New(remote.Config{URL: cfg.Remote.URL, Timeout: timeout})
		asstOpts = append(asstOpts, assistant.WithFallback(client))
	}

	return assistant.New(store, resolver, locale.Messages, asstOpts...)
}

// remoteAllowed resolves the remote consent state, asking once on first run
// when a UI is available. An unanswered prompt leaves the decision pending
// and keeps this run local.
func remoteAllowed(cfg *config.Config, cfgPath string, backend string, opts options) bool {
	if cfg.Remote.Enabled != nil {
		return cfg.RemoteEnabled()
	}
	if opts.JSON {
		return false
	}

	approved, answered, err := ui.ConfirmRemote(backend, cfg.Remote.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: consent prompt failed: %v\n", err)
		return false
	}
	if !answered {
		return false
	}
	if err := cfg.Set("remote.enabled", strconv.FormatBool(approved)); err != nil {
		return approved
	}
	if err := config.Save(cfgPath, *cfg); err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: could not save remote preference: %v\n", err)
	}
	return approved
}

func overlayHooks(overlays i18n.ProductOverlays) format.Hooks {
	return format.Hooks{
		Name: func(productID int) string {
			return overlays.Names[strconv.Itoa(productID)]
		},
		Describe: func(productID int) string {
			return overlays.Descriptions[strconv.Itoa(productID)]
		},
	}
}

func handleShowConfig(cfg config.Config, cfgPath string, asJSON bool) {
	if asJSON {
		payload := struct {
			Config     config.Config `json:"config"`
			ConfigPath string        `json:"config_path"`
		}{Config: cfg, ConfigPath: cfgPath}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "medshelf: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Printf("config: %s\n", cfgPath)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "medshelf: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func printResponse(payload response, asJSON bool) {
	if asJSON {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "medshelf: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	if payload.Answer != "" {
		fmt.Println(payload.Answer)
		return
	}
	if payload.Message != "" {
		fmt.Println(payload.Message)
	}
	if payload.ConfigPath != "" {
		fmt.Printf("config: %s\n", payload.ConfigPath)
	}
}
