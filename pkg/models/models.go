package models

import (
	"fmt"
	"strings"
)

// ShiftDefinition is a named weekly work period and the weekdays it recurs on
type ShiftDefinition struct {
	Name  string    `json:"name" binding:"required"`
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
	Days  []Weekday `json:"days" binding:"required,min=1,dive,min=1,max=7"`
}

// Validate checks the invariants a shift must hold wherever it was loaded
// from: a name, at least one valid day, start before end
func (s ShiftDefinition) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("shift has no name")
	}
	if len(s.Days) == 0 {
		return fmt.Errorf("shift %q has no days", s.Name)
	}
	for _, d := range s.Days {
		if !d.Valid() {
			return fmt.Errorf("shift %q: invalid day %d", s.Name, int(d))
		}
	}
	if !s.Start.Before(s.End) {
		return fmt.Errorf("shift %q: start %s is not before end %s", s.Name, s.Start, s.End)
	}
	return nil
}

// OnDay reports whether the shift recurs on the given weekday
func (s ShiftDefinition) OnDay(day Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Employee is a worker who can be assigned shifts. AssignedCount is scratch
// state owned by the assignment engine for the duration of a run
type Employee struct {
	Name            string    `json:"name" binding:"required"`
	UnavailableDays []Weekday `json:"unavailable_days,omitempty" binding:"omitempty,dive,min=1,max=7"`
	AssignedCount   int       `json:"assigned_count"`
}

// DemandCell is one (weekday, shift) slot requiring a fixed headcount
type DemandCell struct {
	Day      Weekday `json:"day"`
	Shift    string  `json:"shift"`
	Required int     `json:"required"`
}

// CellKey identifies one roster cell
type CellKey struct {
	Day   Weekday
	Shift string
}

// Roster maps each demand cell to the employee names assigned to it, in
// assignment order. Built fresh by every engine run
type Roster map[CellKey][]string

// Assigned returns the names assigned to the (day, shift) cell
func (r Roster) Assigned(day Weekday, shift string) []string {
	return r[CellKey{Day: day, Shift: shift}]
}

// ScheduleInput is the request body for the scheduling endpoint
type ScheduleInput struct {
	Shifts    []ShiftDefinition `json:"shifts" binding:"required,min=1,dive"`
	Employees []Employee        `json:"employees" binding:"required,min=1,dive"`
	Headcount int               `json:"headcount" binding:"required,min=1"`
	Mode      string            `json:"mode,omitempty" binding:"omitempty,oneof=strict relaxed"`
	Seed      *int64            `json:"seed,omitempty"`
}

// ScheduleResponse is the data structure for a completed scheduling run
type ScheduleResponse struct {
	RunID         string                         `json:"run_id"`
	Mode          string                         `json:"mode"`
	Assignments   map[string]map[string][]string `json:"assignments"` // shift -> weekday name -> employee names
	FairnessScore float64                        `json:"fairness_score"`
	Employees     map[string]int                 `json:"employees"` // name -> assigned count
}

// ValidateResponse reports the structural problems found in a schedule input
type ValidateResponse struct {
	Valid  bool           `json:"valid"`
	Errors []string       `json:"errors,omitempty"`
	Stats  map[string]int `json:"stats,omitempty"`
}
