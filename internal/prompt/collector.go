// Package prompt collects schedule input interactively: the minimum
// headcount per shift, then employee names and their requested days off,
// one employee at a time until a blank name ends the list.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// ErrAborted is returned when the user quits a prompt with esc or ctrl+c.
var ErrAborted = errors.New("input aborted")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

type phase int

const (
	phaseHeadcount phase = iota
	phaseName
	phaseDays
	phaseDone
)

// Result carries everything a finished collection run produced.
type Result struct {
	Headcount int
	Employees []*models.Employee
	Aborted   bool
}

// Collector is the bubbletea model that walks the input phases.
type Collector struct {
	input     textinput.Model
	phase     phase
	headcount int
	current   string
	employees []*models.Employee
	seen      map[string]bool
	errMsg    string
	aborted   bool
}

// NewCollector builds a collector. A positive headcount skips the headcount
// question (it was already supplied on the command line).
func NewCollector(headcount int) Collector {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	c := Collector{
		input:     input,
		headcount: headcount,
		seen:      make(map[string]bool),
	}
	if headcount > 0 {
		c.phase = phaseName
		c.input.Placeholder = "blank to finish"
	} else {
		c.phase = phaseHeadcount
		c.input.Placeholder = "e.g. 2"
	}
	return c
}

// Collect runs the interactive collection and returns its result.
func Collect(headcount int) (Result, error) {
	final, err := tea.NewProgram(NewCollector(headcount)).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Collector).Result(), nil
}

// Result extracts what the collector gathered.
func (c Collector) Result() Result {
	return Result{
		Headcount: c.headcount,
		Employees: c.employees,
		Aborted:   c.aborted,
	}
}

func (c Collector) Init() tea.Cmd {
	return textinput.Blink
}

func (c Collector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			c.aborted = true
			return c, tea.Quit
		case tea.KeyEnter:
			return c.submit()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c Collector) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(c.input.Value())
	c.errMsg = ""

	switch c.phase {
	case phaseHeadcount:
		n, err := parseHeadcount(value)
		if err != nil {
			c.errMsg = err.Error()
			c.input.SetValue("")
			return c, nil
		}
		c.headcount = n
		c.phase = phaseName
		c.input.SetValue("")
		c.input.Placeholder = "blank to finish"

	case phaseName:
		if value == "" {
			c.phase = phaseDone
			return c, tea.Quit
		}
		if c.seen[value] {
			c.errMsg = fmt.Sprintf("%s is already on the list", value)
			c.input.SetValue("")
			return c, nil
		}
		c.current = value
		c.phase = phaseDays
		c.input.SetValue("")
		c.input.Placeholder = "e.g. 1,7 or blank for none"

	case phaseDays:
		days, err := models.ParseDayList(value)
		if err != nil {
			c.errMsg = err.Error()
			c.input.SetValue("")
			return c, nil
		}
		c.employees = append(c.employees, &models.Employee{
			Name:            c.current,
			UnavailableDays: days,
		})
		c.seen[c.current] = true
		c.current = ""
		c.phase = phaseName
		c.input.SetValue("")
		c.input.Placeholder = "blank to finish"
	}
	return c, nil
}

func (c Collector) View() string {
	if c.phase == phaseDone || c.aborted {
		return ""
	}

	var b strings.Builder
	switch c.phase {
	case phaseHeadcount:
		b.WriteString(questionStyle.Render("Whats the minimum amount of workers you need?") + "\n")
	case phaseName:
		b.WriteString(hintStyle.Render("Keep typing names of workers. When you're done, press enter.") + "\n")
		if len(c.employees) > 0 {
			b.WriteString(hintStyle.Render(fmt.Sprintf("%d added so far", len(c.employees))) + "\n")
		}
		b.WriteString(questionStyle.Render("Worker:") + "\n")
	case phaseDays:
		b.WriteString(questionStyle.Render(fmt.Sprintf("Enter days (1-7) when %s can't work (comma-separated):", c.current)) + "\n")
	}
	b.WriteString(c.input.View() + "\n")
	if c.errMsg != "" {
		b.WriteString(warnStyle.Render(c.errMsg) + "\n")
	}
	b.WriteString(hintStyle.Render("press enter to confirm, esc to quit"))
	return b.String()
}

func parseHeadcount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("enter a positive whole number")
	}
	return n, nil
}
