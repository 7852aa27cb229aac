// Package render draws the terminal views: the weekly demand table, the
// assigned roster table, the requested-free-days summary and the strict-mode
// conflict report. The weekly tables carry no color styling so the same
// output can be written to a file untouched.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

var (
	headerStyle = lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
)

// DemandTable renders the weekly grid with a "+" in every cell that needs
// coverage.
func DemandTable(shifts []models.ShiftDefinition) string {
	return weekTable(shifts, func(shift models.ShiftDefinition, day models.Weekday) string {
		if shift.OnDay(day) {
			return "+"
		}
		return ""
	})
}

// RosterTable renders the assigned schedule, each cell listing the employees
// working that shift on that day.
func RosterTable(shifts []models.ShiftDefinition, roster models.Roster) string {
	return weekTable(shifts, func(shift models.ShiftDefinition, day models.Weekday) string {
		return strings.Join(roster.Assigned(day, shift.Name), ", ")
	})
}

func weekTable(shifts []models.ShiftDefinition, cell func(models.ShiftDefinition, models.Weekday) string) string {
	headers := []string{"Shift", "Start", "End"}
	for _, day := range models.AllWeekdays {
		headers = append(headers, day.String())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, shift := range shifts {
		row := []string{shift.Name, shift.Start.String(), shift.End.String()}
		for _, day := range models.AllWeekdays {
			row = append(row, cell(shift, day))
		}
		t.Row(row...)
	}
	return t.Render()
}

// FreeDaysSummary lists each employee's requested days off, one line each.
func FreeDaysSummary(employees []*models.Employee) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Requested free days") + "\n")
	for _, emp := range employees {
		if len(emp.UnavailableDays) == 0 {
			fmt.Fprintf(&b, "%s has no requested free days.\n", emp.Name)
			continue
		}
		names := make([]string, 0, len(emp.UnavailableDays))
		for _, d := range emp.UnavailableDays {
			names = append(names, d.String())
		}
		fmt.Fprintf(&b, "%s: %s\n", emp.Name, strings.Join(names, ", "))
	}
	return b.String()
}

// ConflictReport explains which cells strict mode could not fill.
func ConflictReport(unfilled *scheduler.UnfilledError) string {
	var b strings.Builder
	b.WriteString(warnStyle.Render("It's not possible to accommodate everyone's preferences.") + "\n")
	for _, cell := range unfilled.Cells {
		fmt.Fprintf(&b, "  %s %s: %d seat(s) open (%s)\n", cell.Day, cell.Shift, cell.Missing, cell.Reason)
	}
	return b.String()
}

// RunSummary shows per-employee totals and the fairness score after a run.
func RunSummary(s *scheduler.Scheduler) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shifts per employee") + "\n")
	for _, emp := range s.Employees {
		fmt.Fprintf(&b, "%s: %d\n", emp.Name, emp.AssignedCount)
	}
	fmt.Fprintf(&b, "Fairness score: %.1f%%\n", s.CalculateFairnessScore())
	return b.String()
}
