package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
	"github.com/askell/medshelf/internal/format"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rivo/tview"
)

// BrowseProducts shows the catalog in a scrollable picker. Selecting a
// product prints its detail block after the program exits; the plain
// backend just lists every block.
func BrowseProducts(backend string, products []catalog.Product, formatter *format.Formatter) error {
	if len(products) == 0 {
		return nil
	}

	var firstErr error
	for _, candidate := range backendCandidates(backend) {
		var (
			picked catalog.Product
			used   bool
			err    error
		)
		switch candidate {
		case BackendBubbleTea:
			picked, used, err = browseWithBubbleTea(products, formatter)
		case BackendHuh:
			picked, used, err = browseWithHuh(products, formatter)
		case BackendTView:
			picked, used, err = browseWithTView(products, formatter)
		case BackendPlain:
			return browsePlain(products, formatter)
		default:
			continue
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if used {
			fmt.Println(formatter.Block(picked))
		}
		return nil
	}
	if firstErr != nil {
		return browsePlain(products, formatter)
	}
	return nil
}

func browsePlain(products []catalog.Product, formatter *format.Formatter) error {
	for _, p := range products {
		fmt.Fprintf(os.Stdout, "%s\n\n", formatter.Block(p))
	}
	return nil
}

type browseItem struct {
	title       string
	description string
	index       int
}

func (i browseItem) Title() string       { return i.title }
func (i browseItem) Description() string { return i.description }
func (i browseItem) FilterValue() string { return i.title + " " + i.description }

type browseModel struct {
	list      list.Model
	selection int
	cancelled bool
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(k.Width-4, k.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch k.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(browseItem); ok {
				m.selection = item.index
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string { return m.list.View() }

func browseWithBubbleTea(products []catalog.Product, formatter *format.Formatter) (catalog.Product, bool, error) {
	items := make([]list.Item, 0, len(products))
	for idx, p := range products {
		items = append(items, browseItem{
			title:       fmt.Sprintf("%s — %s", formatter.DisplayName(p), formatter.FormatPrice(p.Price)),
			description: fmt.Sprintf("%s · %s", p.Category, formatter.StockPhrase(p)),
			index:       idx,
		})
	}

	delegate := list.NewDefaultDelegate()
	picker := list.New(items, delegate, 76, 20)
	picker.Title = "product catalog"
	picker.SetShowHelp(false)
	picker.SetFilteringEnabled(true)

	model := browseModel{list: picker, selection: -1}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return catalog.Product{}, false, err
	}
	out, ok := final.(browseModel)
	if !ok || out.cancelled || out.selection < 0 || out.selection >= len(products) {
		return catalog.Product{}, false, nil
	}
	return products[out.selection], true, nil
}

func browseWithHuh(products []catalog.Product, formatter *format.Formatter) (catalog.Product, bool, error) {
	options := make([]huh.Option[int], 0, len(products))
	for idx, p := range products {
		label := fmt.Sprintf("%s — %s (%s)", formatter.DisplayName(p), formatter.FormatPrice(p.Price), p.Category)
		options = append(options, huh.NewOption(label, idx))
	}

	choice := -1
	prompt := huh.NewSelect[int]().
		Title("product catalog").
		Options(options...).
		Filtering(true).
		Height(clampInt(len(options)+1, 4, 14)).
		Value(&choice).
		WithTheme(huh.ThemeCharm())

	if err := prompt.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return catalog.Product{}, false, nil
		}
		return catalog.Product{}, false, err
	}
	if choice < 0 || choice >= len(products) {
		return catalog.Product{}, false, nil
	}
	return products[choice], true, nil
}

func browseWithTView(products []catalog.Product, formatter *format.Formatter) (catalog.Product, bool, error) {
	app := tview.NewApplication()
	listView := tview.NewList()
	listView.SetBorder(true)
	listView.SetTitle("product catalog")

	picked := catalog.Product{}
	used := false
	for _, p := range products {
		current := p
		main := fmt.Sprintf("%s — %s", formatter.DisplayName(current), formatter.FormatPrice(current.Price))
		secondary := strings.TrimSpace(current.Category + " · " + formatter.StockPhrase(current))
		listView.AddItem(main, secondary, 0, func() {
			picked = current
			used = true
			app.Stop()
		})
	}
	listView.SetDoneFunc(func() {
		app.Stop()
	})

	if err := app.SetRoot(listView, true).SetFocus(listView).Run(); err != nil {
		return catalog.Product{}, false, err
	}
	if !used {
		return catalog.Product{}, false, nil
	}
	return picked, true, nil
}
