package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// AskFunc answers one shopper query. Source labels where the answer came
// from (local rules, remembered answer, remote proxy, advisory).
type AskFunc func(query string) (answer string, source string)

// ChatSession carries the localized strings the chat surfaces render.
type ChatSession struct {
	Title    string
	Greeting string
	Prompt   string
	Ask      AskFunc
}

var chatExitWords = []string{"exit", "quit", "bye", "अलविदा"}

func isChatExit(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, word := range chatExitWords {
		if input == word {
			return true
		}
	}
	return false
}

// RunChat drives an interactive question loop on the first backend that
// works, falling back to the plain stdin loop when none of the full-screen
// backends can start.
func RunChat(backend string, session ChatSession) error {
	var firstErr error
	for _, candidate := range backendCandidates(backend) {
		var err error
		switch candidate {
		case BackendBubbleTea:
			err = chatWithBubbleTea(session)
		case BackendHuh:
			err = chatWithHuh(session)
		case BackendTView:
			err = chatWithTView(session)
		case BackendPlain:
			return chatPlain(session, os.Stdin, os.Stdout)
		default:
			continue
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return nil
	}
	if firstErr != nil {
		return chatPlain(session, os.Stdin, os.Stdout)
	}
	return nil
}

type chatLine struct {
	speaker string
	text    string
}

type chatModel struct {
	session ChatSession
	input   textinput.Model
	lines   []chatLine
	width   int
	height  int
}

func newChatModel(session ChatSession) chatModel {
	input := textinput.New()
	input.Placeholder = session.Prompt
	input.CharLimit = 240
	input.Width = 72
	input.Focus()

	model := chatModel{session: session, input: input, width: 80, height: 24}
	if strings.TrimSpace(session.Greeting) != "" {
		model.lines = append(model.lines, chatLine{speaker: "", text: session.Greeting})
	}
	return model
}

func (m chatModel) Init() tea.Cmd { return textinput.Blink }

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = k.Width
		m.height = k.Height
		m.input.Width = clampInt(k.Width-6, 20, 100)
		return m, nil
	case tea.KeyMsg:
		switch k.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if query == "" {
				return m, nil
			}
			if isChatExit(query) {
				return m, tea.Quit
			}
			answer, source := m.session.Ask(query)
			m.lines = append(m.lines,
				chatLine{speaker: "you", text: query},
				chatLine{speaker: source, text: answer},
			)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	out := []string{chatTitleStyle.Render(m.session.Title), ""}
	for _, line := range m.visibleLines() {
		if line.speaker == "" {
			out = append(out, chatAnswerStyle.Render(line.text), "")
			continue
		}
		if line.speaker == "you" {
			out = append(out, chatQueryStyle.Render("you: "+line.text))
			continue
		}
		out = append(out, chatSourceStyle.Render("["+line.speaker+"]"))
		out = append(out, chatAnswerStyle.Render(line.text), "")
	}
	out = append(out, m.input.View())
	out = append(out, chatHintStyle.Render("[enter] ask  [esc] leave"))
	return strings.Join(out, "\n")
}

// visibleLines keeps the transcript inside the terminal height. Answer
// blocks can span several lines, so trimming counts rendered lines.
func (m chatModel) visibleLines() []chatLine {
	budget := m.height - 6
	if budget < 4 {
		budget = 4
	}
	used := 0
	start := len(m.lines)
	for start > 0 {
		cost := strings.Count(m.lines[start-1].text, "\n") + 1
		if used+cost > budget {
			break
		}
		used += cost
		start--
	}
	return m.lines[start:]
}

func chatWithBubbleTea(session ChatSession) error {
	_, err := tea.NewProgram(newChatModel(session), tea.WithAltScreen()).Run()
	return err
}

func chatWithHuh(session ChatSession) error {
	if strings.TrimSpace(session.Greeting) != "" {
		fmt.Println(session.Greeting)
	}
	for {
		query := ""
		prompt := huh.NewInput().
			Title(session.Title).
			Prompt("? ").
			Placeholder(session.Prompt).
			Value(&query)
		if err := prompt.WithTheme(huh.ThemeCharm()).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" || isChatExit(query) {
			return nil
		}
		answer, source := session.Ask(query)
		fmt.Printf("[%s]\n%s\n\n", source, answer)
	}
}

func chatWithTView(session ChatSession) error {
	app := tview.NewApplication()

	transcript := tview.NewTextView()
	transcript.SetDynamicColors(true)
	transcript.SetScrollable(true)
	transcript.SetBorder(true)
	transcript.SetTitle(session.Title)
	transcript.SetChangedFunc(func() {
		transcript.ScrollToEnd()
		app.Draw()
	})
	if strings.TrimSpace(session.Greeting) != "" {
		fmt.Fprintf(transcript, "%s\n\n", session.Greeting)
	}

	input := tview.NewInputField()
	input.SetLabel("you> ")
	input.SetFieldWidth(0)
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
			return
		}
		if key != tcell.KeyEnter {
			return
		}
		query := strings.TrimSpace(input.GetText())
		input.SetText("")
		if query == "" {
			return
		}
		if isChatExit(query) {
			app.Stop()
			return
		}
		answer, source := session.Ask(query)
		fmt.Fprintf(transcript, "you: %s\n[%s]\n%s\n\n", query, source, answer)
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(transcript, 0, 1, false).
		AddItem(input, 1, 0, true)

	return app.SetRoot(layout, true).SetFocus(input).Run()
}

func chatPlain(session ChatSession, in io.Reader, out io.Writer) error {
	if strings.TrimSpace(session.Greeting) != "" {
		fmt.Fprintf(out, "%s\n\n", session.Greeting)
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if isChatExit(query) {
			return nil
		}
		answer, source := session.Ask(query)
		fmt.Fprintf(out, "[%s]\n%s\n\n", source, answer)
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

var (
	chatTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("87"))

	chatQueryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("153"))

	chatSourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109"))

	chatAnswerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	chatHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))
)
