// Package ui is a keystroke-driven calculator front end for the terminal.
package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxInputChars bounds the input buffer; further keystrokes are dropped.
const MaxInputChars = 50

// SyntaxErrorLabel replaces the result whenever evaluation fails.
const SyntaxErrorLabel = "Syntax Error"

const acceptedSymbols = ".+-*/%^(), "

// Evaluator is the part of the solver the front end needs.
type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

type Model struct {
	evaluator Evaluator
	format    func(float64) string
	keys      keyMap
	help      help.Model
	buffer    []rune
	result    string
	failed    bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(MaxInputChars + 2)
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// NewModel returns a Bubble Tea model evaluating the buffer on commit.
// format renders successful results.
func NewModel(evaluator Evaluator, format func(float64) string) Model {
	return Model{
		evaluator: evaluator,
		format:    format,
		keys:      defaultKeys,
		help:      help.New(),
	}
}

// Run starts the front end and blocks until the user quits.
func Run(evaluator Evaluator, format func(float64) string, options ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(evaluator, format), options...).Run()
	return err
}

// Buffer returns the current input.
func (m Model) Buffer() string {
	return string(m.buffer)
}

// Result returns the last rendered result and whether it is an error label.
func (m Model) Result() (string, bool) {
	return m.result, m.failed
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Commit):
			m = m.commit()
		case key.Matches(msg, m.keys.Delete):
			if len(m.buffer) > 0 {
				m.buffer = m.buffer[:len(m.buffer)-1]
			}
		case key.Matches(msg, m.keys.Clear):
			m.buffer = nil
		case msg.Type == tea.KeySpace:
			m = m.insert(' ')
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				m = m.insert(r)
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) insert(r rune) Model {
	if len(m.buffer) >= MaxInputChars || !accepted(r) {
		return m
	}
	buffer := make([]rune, len(m.buffer), len(m.buffer)+1)
	copy(buffer, m.buffer)
	m.buffer = append(buffer, r)
	return m
}

func (m Model) commit() Model {
	value, err := m.evaluator.Evaluate(string(m.buffer))
	if err != nil {
		m.result, m.failed = SyntaxErrorLabel, true
		return m
	}
	m.result, m.failed = m.format(value), false
	return m
}

func accepted(r rune) bool {
	return (r >= '0' && r <= '9') || unicode.IsLetter(r) || strings.ContainsRune(acceptedSymbols, r)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gocalc"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Result:"))
	b.WriteString(" ")
	if m.failed {
		b.WriteString(errorStyle.Render(m.result))
	} else {
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("Enter Math Expression: (%d/%d)", len(m.buffer), MaxInputChars)))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(string(m.buffer) + "_"))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = Model{}
