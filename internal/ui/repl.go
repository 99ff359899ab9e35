// Package ui hosts the interactive playground: type an expression, see its
// expansion (or diagnostic) immediately.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/BonnyAD9/place-macro/pkg/place"
)

const historyShown = 10

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

type entry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	input   textinput.Model
	history []entry
	width   int
	opts    place.Options
}

// NewREPLModel returns a Bubble Tea model for the expansion playground.
func NewREPLModel(opts place.Options) tea.Model {
	ti := textinput.New()
	ti.Placeholder = `__string__(hello " " world)`
	ti.Prompt = promptStyle.Render("place> ")
	ti.Focus()

	return replModel{
		input: ti,
		width: 80,
		opts:  opts,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 20)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.history = append(m.history, m.eval(line))
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) eval(line string) entry {
	out, err := place.ExpandSource("repl", line, m.opts)
	if err != nil {
		return entry{input: line, output: err.Error(), isErr: true}
	}
	return entry{input: line, output: out}
}

func (m replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("place playground"))
	b.WriteString(hintStyle.Render("  (esc to quit)"))
	b.WriteString("\n\n")

	history := m.history
	if len(history) > historyShown {
		history = history[len(history)-historyShown:]
	}
	for _, e := range history {
		b.WriteString(promptStyle.Render("place> "))
		b.WriteString(m.fit(e.input, 7))
		b.WriteString("\n")
		style := outStyle
		if e.isErr {
			style = errStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(m.fit(e.output, 2)))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// fit truncates a line to the terminal width by display width.
func (m replModel) fit(s string, used int) string {
	return runewidth.Truncate(s, max(m.width-used, 20), "…")
}

// RunREPL starts the playground and blocks until the user quits.
func RunREPL(opts place.Options) error {
	_, err := tea.NewProgram(NewREPLModel(opts)).Run()
	return err
}
