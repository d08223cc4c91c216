package ui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rivo/tview"
)

const consentTitle = "Allow remote answers?"

func consentBody(url string) string {
	return fmt.Sprintf(
		"Questions the built-in rules cannot answer can be sent to a remote assistant at %s. Emails, phone numbers and order numbers are redacted first.",
		strings.TrimSpace(url),
	)
}

// ConfirmRemote asks once whether unresolved questions may leave the
// machine. answered is false when no backend could pose the question, so
// the caller keeps the decision pending.
func ConfirmRemote(backend string, url string) (approved bool, answered bool, err error) {
	var firstErr error
	for _, candidate := range backendCandidates(backend) {
		var confirmErr error
		switch candidate {
		case BackendBubbleTea:
			approved, confirmErr = consentWithBubbleTea(url)
		case BackendHuh:
			approved, confirmErr = consentWithHuh(url)
		case BackendTView:
			approved, confirmErr = consentWithTView(url)
		case BackendPlain:
			return consentPlain(url)
		default:
			continue
		}
		if confirmErr != nil {
			if firstErr == nil {
				firstErr = confirmErr
			}
			continue
		}
		return approved, true, nil
	}
	if firstErr != nil {
		return false, false, firstErr
	}
	return false, false, nil
}

type consentModel struct {
	url      string
	approved bool
	done     bool
}

func (m consentModel) Init() tea.Cmd { return nil }

func (m consentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(k.String()) {
		case "y":
			m.approved = true
			m.done = true
			return m, tea.Quit
		case "n", "esc", "ctrl+c", "enter":
			m.approved = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m consentModel) View() string {
	return fmt.Sprintf("%s\n\n%s\n\n[y] allow  [n] stay local", consentTitle, consentBody(m.url))
}

func consentWithBubbleTea(url string) (bool, error) {
	model := consentModel{url: url}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	out, ok := final.(consentModel)
	if !ok || !out.done {
		return false, nil
	}
	return out.approved, nil
}

func consentWithHuh(url string) (bool, error) {
	approved := false
	prompt := huh.NewConfirm().
		Title(consentTitle).
		Description(consentBody(url)).
		Affirmative("Allow").
		Negative("Stay local").
		Value(&approved).
		WithTheme(huh.ThemeCharm())
	if err := prompt.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return approved, nil
}

func consentWithTView(url string) (bool, error) {
	app := tview.NewApplication()
	approved := false
	done := false

	modal := tview.NewModal().
		SetText(consentTitle + "\n\n" + consentBody(url)).
		AddButtons([]string{"Allow", "Stay local"}).
		SetDoneFunc(func(_ int, label string) {
			done = true
			approved = strings.EqualFold(strings.TrimSpace(label), "allow")
			app.Stop()
		})

	if err := app.SetRoot(modal, true).Run(); err != nil {
		return false, err
	}
	if !done {
		return false, nil
	}
	return approved, nil
}

func consentPlain(url string) (bool, bool, error) {
	fmt.Printf("%s\n%s\n[y/N] ", consentTitle, consentBody(url))
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fmt.Println()
		return false, false, scanner.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes", true, nil
}
