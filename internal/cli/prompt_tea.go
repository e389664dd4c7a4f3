package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle    = blurredStyle
)

// PromptModel is a single-question text input.
type PromptModel struct {
	input     textinput.Model
	label     string
	required  bool
	hint      string
	value     string
	submitted bool
	aborted   bool
}

// NewPromptModel creates a focused prompt. Required prompts refuse blank
// answers.
func NewPromptModel(label string, required bool) PromptModel {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.PromptStyle = focusedStyle
	t.Prompt = "> "
	t.CharLimit = 0
	t.Focus()

	return PromptModel{
		input:    t,
		label:    label,
		required: required,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if m.required && value == "" {
				m.hint = requiredHint
				return m, nil
			}

			m.value = value
			m.submitted = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	if m.hint != "" && strings.TrimSpace(m.input.Value()) != "" {
		m.hint = ""
	}

	return m, cmd
}

func (m PromptModel) View() string {
	if m.submitted {
		return fmt.Sprintf("%s %s\n", m.label, answerStyle.Render(m.value))
	}

	if m.aborted {
		return ""
	}

	s := m.label + "\n" + m.input.View() + "\n"
	if m.hint != "" {
		s += errorStyle.Render(m.hint) + "\n"
	}
	s += helpStyle.Render("enter: submit • esc: quit") + "\n"

	return s
}

// Value returns the submitted answer.
func (m PromptModel) Value() string {
	return m.value
}

// Aborted reports whether the user cancelled the prompt.
func (m PromptModel) Aborted() bool {
	return m.aborted
}

// TeaPrompter asks each question with its own bubbletea program.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) AskRequired(prompt string) (string, error) {
	return p.ask(prompt, true)
}

func (p *TeaPrompter) AskOptional(prompt string) (string, error) {
	return p.ask(prompt, false)
}

func (p *TeaPrompter) ask(prompt string, required bool) (string, error) {
	m := NewPromptModel(strings.TrimSpace(prompt), required)

	finalModel, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	promptModel := finalModel.(PromptModel)
	if promptModel.Aborted() {
		return "", ErrAborted
	}

	return promptModel.Value(), nil
}
