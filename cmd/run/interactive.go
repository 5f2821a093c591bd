package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/js-bridge/bridge"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	input  string
	output string
	failed bool
}

type replModel struct {
	err     error
	ctx     *bridge.Context
	catcher *exceptionCatcher
	input   textinput.Model
	entries []entry
	history []string
	histIdx int
	seq     int
}

// exceptionCatcher holds the most recent reported exception so the REPL
// can render it next to the input that caused it.
type exceptionCatcher struct {
	last *bridge.ScriptException
}

func (c *exceptionCatcher) HandleScriptException(e *bridge.ScriptException) {
	c.last = e
}

func newReplModel() *replModel {
	ti := textinput.New()
	ti.Prompt = "js> "
	ti.Placeholder = "1 + 2"
	ti.Width = 70
	ti.Focus()

	return &replModel{
		input: ti,
	}
}

type contextReadyMsg struct {
	err     error
	ctx     *bridge.Context
	catcher *exceptionCatcher
}

func (m *replModel) Init() tea.Cmd {
	return m.createContext
}

func (m *replModel) createContext() tea.Msg {
	catcher := &exceptionCatcher{}
	ctx, err := bridge.NewContext(catcher)
	if err != nil {
		return contextReadyMsg{err: err}
	}
	return contextReadyMsg{ctx: ctx, catcher: catcher}
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			if m.ctx != nil {
				m.ctx.Close()
			}
			return m, tea.Quit

		case "enter":
			source := strings.TrimSpace(m.input.Value())
			if source == "" || m.ctx == nil {
				return m, nil
			}
			m.evaluate(source)
			m.history = append(m.history, source)
			m.histIdx = len(m.history)
			m.input.SetValue("")

		case "up":
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}

		case "down":
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			} else if m.histIdx == len(m.history)-1 {
				m.histIdx = len(m.history)
				m.input.SetValue("")
			}

		case "esc":
			m.entries = nil
		}

	case contextReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.ctx = msg.ctx
		m.catcher = msg.catcher
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) evaluate(source string) {
	m.seq++
	m.catcher.last = nil

	result := m.ctx.Evaluate(fmt.Sprintf("repl:%d", m.seq), source)
	e := entry{input: source}

	if m.catcher.last != nil {
		e.failed = true
		e.output = m.catcher.last.Error()
	} else {
		e.output = formatValue(result)
	}
	m.entries = append(m.entries, e)
}

func (m *replModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("JS Bridge"))
	b.WriteString("\n\n")

	if m.ctx == nil {
		b.WriteString("Starting engine...\n")
		return b.String()
	}

	for _, e := range m.entries {
		b.WriteString(promptStyle.Render("js> "))
		b.WriteString(e.input)
		b.WriteString("\n")
		if e.failed {
			b.WriteString(errorStyle.Render(e.output))
		} else {
			b.WriteString(resultStyle.Render(e.output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ history • esc clear • ctrl+c quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newReplModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
