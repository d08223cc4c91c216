// Package assistant orchestrates the local-first answer flow: rule engine,
// then remembered remote answers, then the remote proxy, and a fixed
// advisory message when everything else fails.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
	"github.com/askell/medshelf/internal/i18n"
	"github.com/askell/medshelf/internal/intent"
	"github.com/askell/medshelf/internal/memory"
	"github.com/askell/medshelf/internal/safety"
)

// Fallback is the remote assistant proxy. Implementations take the redacted
// prompt plus the serialized catalog context and return answer text.
type Fallback interface {
	Ask(ctx context.Context, prompt, catalogContext string) (string, error)
}

type Source string

const (
	SourceLocal    Source = "local"
	SourceMemory   Source = "memory"
	SourceRemote   Source = "remote"
	SourceAdvisory Source = "advisory"
)

type Answer struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

type Assistant struct {
	store      *catalog.Store
	resolver   *intent.Resolver
	msgs       i18n.MessageCatalog
	fallback   Fallback
	answers    *memory.Store
	answerPath string
	remember   bool
}

type Option func(*Assistant)

// WithFallback wires the remote proxy. Without it the assistant answers the
// advisory message for anything the rule engine cannot resolve.
func WithFallback(fallback Fallback) Option {
	return func(a *Assistant) { a.fallback = fallback }
}

// WithAnswerMemory wires the remembered-answer store; remember controls
// whether new remote answers are written back.
func WithAnswerMemory(store *memory.Store, path string, remember bool) Option {
	return func(a *Assistant) {
		a.answers = store
		a.answerPath = path
		a.remember = remember
	}
}

func New(store *catalog.Store, resolver *intent.Resolver, msgs i18n.MessageCatalog, opts ...Option) *Assistant {
	a := &Assistant{
		store:    store,
		resolver: resolver,
		msgs:     msgs,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask never returns an error: every failure path degrades to a message the
// shopper can read.
func (a *Assistant) Ask(ctx context.Context, query string) Answer {
	if a.store.HasError() {
		return Answer{Text: a.msgs.CatalogDown, Source: SourceAdvisory}
	}

	if text, ok := a.resolver.Resolve(query); ok {
		return Answer{Text: text, Source: SourceLocal}
	}

	if a.answers != nil {
		if text, ok := a.answers.Lookup(query); ok {
			a.persistAnswers()
			return Answer{Text: text, Source: SourceMemory}
		}
	}

	if a.fallback == nil {
		return Answer{Text: a.msgs.Advisory, Source: SourceAdvisory}
	}

	prompt := safety.RedactPrompt(strings.TrimSpace(query))
	text, err := a.fallback.Ask(ctx, prompt, CatalogContext(a.store))
	if err != nil {
		return Answer{Text: a.msgs.Advisory, Source: SourceAdvisory}
	}

	if a.answers != nil && a.remember {
		a.answers.Remember(query, text)
		a.persistAnswers()
	}
	return Answer{Text: text, Source: SourceRemote}
}

// persistAnswers is best-effort; a failed write never degrades the answer.
func (a *Assistant) persistAnswers() {
	if a.answers == nil || a.answerPath == "" {
		return
	}
	_ = memory.Save(a.answerPath, *a.answers)
}

// CatalogContext serializes the catalog for the remote prompt, one line per
// product: name, category, active ingredient, price, stock.
func CatalogContext(store *catalog.Store) string {
	products := store.Products()
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %.2f | %d",
			p.Name, p.Category, p.ActiveIngredient, p.Price, p.Stock))
	}
	return strings.Join(lines, "\n")
}
