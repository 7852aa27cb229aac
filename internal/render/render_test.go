package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

func sampleShifts() []models.ShiftDefinition {
	return []models.ShiftDefinition{
		{
			Name:  "Morning",
			Start: models.ClockTime(8 * 60),
			End:   models.ClockTime(16 * 60),
			Days:  []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday},
		},
		{
			Name:  "Evening",
			Start: models.ClockTime(16 * 60),
			End:   models.ClockTime(23 * 60),
			Days:  []models.Weekday{models.Saturday, models.Sunday},
		},
	}
}

func TestDemandTable(t *testing.T) {
	out := DemandTable(sampleShifts())

	for _, header := range []string{"Shift", "Start", "End", "Monday", "Sunday"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "23:00")

	// One "+" per demand cell: 5 Morning days + 2 Evening days
	assert.Equal(t, 7, strings.Count(out, "+"))
}

func TestRosterTable(t *testing.T) {
	roster := models.Roster{
		{Day: models.Monday, Shift: "Morning"}:   {"Alice", "Bob"},
		{Day: models.Saturday, Shift: "Evening"}: {"Charlie"},
	}
	out := RosterTable(sampleShifts(), roster)

	assert.Contains(t, out, "Alice, Bob")
	assert.Contains(t, out, "Charlie")
	assert.NotContains(t, out, "+")
}

func TestFreeDaysSummary(t *testing.T) {
	employees := []*models.Employee{
		{Name: "Alice", UnavailableDays: []models.Weekday{models.Monday, models.Friday}},
		{Name: "Bob"},
	}
	out := FreeDaysSummary(employees)

	assert.Contains(t, out, "Alice: Monday, Friday")
	assert.Contains(t, out, "Bob has no requested free days.")
}

func TestConflictReport(t *testing.T) {
	unfilled := &scheduler.UnfilledError{
		Cells: []scheduler.UnfilledCell{
			{Day: models.Monday, Shift: "Opening", Missing: 1, Reason: "1 of 1 employees are unavailable on Monday"},
		},
	}
	out := ConflictReport(unfilled)

	assert.Contains(t, out, "It's not possible to accommodate everyone's preferences.")
	assert.Contains(t, out, "Monday Opening")
	assert.Contains(t, out, "unavailable on Monday")
}

func TestRunSummary(t *testing.T) {
	s := scheduler.New([]*models.Employee{
		{Name: "Alice", AssignedCount: 2},
		{Name: "Bob", AssignedCount: 2},
	})
	out := RunSummary(s)

	assert.Contains(t, out, "Alice: 2")
	assert.Contains(t, out, "Bob: 2")
	assert.Contains(t, out, "Fairness score: 100.0%")
}
