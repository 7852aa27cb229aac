package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	question string
	input    textinput.Model
	answer   bool
	answered bool
	aborted  bool
	errMsg   string
}

func newConfirm(question string) confirmModel {
	input := textinput.New()
	input.Placeholder = "yes/no"
	input.CharLimit = 8
	input.Width = 12
	input.Focus()
	return confirmModel{question: question, input: input}
}

// Confirm asks a yes/no question and returns the answer.
func Confirm(question string) (bool, error) {
	final, err := tea.NewProgram(newConfirm(question)).Run()
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			switch strings.ToLower(strings.TrimSpace(m.input.Value())) {
			case "yes", "y":
				m.answer = true
				m.answered = true
				return m, tea.Quit
			case "no", "n":
				m.answer = false
				m.answered = true
				return m, tea.Quit
			}
			m.errMsg = "please answer yes or no"
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question+" (yes/no)") + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(warnStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(hintStyle.Render("press enter to confirm, esc to quit"))
	return b.String()
}

type askModel struct {
	question string
	input    textinput.Model
	value    string
	answered bool
	aborted  bool
}

func newAsk(question, placeholder string) askModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 128
	input.Width = 40
	input.Focus()
	return askModel{question: question, input: input}
}

// AskString asks one free-form question, re-asking while the answer is blank.
func AskString(question, placeholder string) (string, error) {
	final, err := tea.NewProgram(newAsk(question, placeholder)).Run()
	if err != nil {
		return "", err
	}
	m := final.(askModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if value := strings.TrimSpace(m.input.Value()); value != "" {
				m.value = value
				m.answered = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m askModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(hintStyle.Render("press enter to confirm, esc to quit"))
	return b.String()
}
