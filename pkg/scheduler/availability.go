package scheduler

import "github.com/arnavshah/scheduler-cli-go/pkg/models"

type daySet map[models.Weekday]bool

// Index answers availability questions and tracks per-employee assignment
// counts for fairness during a run
type Index struct {
	Employees   []*models.Employee
	unavailable map[string]daySet
}

// NewIndex builds an availability index over the employee roster
func NewIndex(employees []*models.Employee) *Index {
	ix := &Index{
		Employees:   employees,
		unavailable: make(map[string]daySet, len(employees)),
	}
	for _, emp := range employees {
		days := make(daySet, len(emp.UnavailableDays))
		for _, d := range emp.UnavailableDays {
			days[d] = true
		}
		ix.unavailable[emp.Name] = days
	}
	return ix
}

// IsAvailable reports whether the employee can work the given weekday
func (ix *Index) IsAvailable(emp *models.Employee, day models.Weekday) bool {
	return !ix.unavailable[emp.Name][day]
}

// LeastLoaded returns the candidate with the lowest assigned count. Ties go
// to the earliest candidate so repeated runs produce the same roster
func (ix *Index) LeastLoaded(candidates []*models.Employee) *models.Employee {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, emp := range candidates[1:] {
		if emp.AssignedCount < best.AssignedCount {
			best = emp
		}
	}
	return best
}

// RecordAssignment counts one cell fill against the employee
func (ix *Index) RecordAssignment(emp *models.Employee) {
	emp.AssignedCount++
}

// Reset zeroes every employee's assigned count for a fresh run
func (ix *Index) Reset() {
	for _, emp := range ix.Employees {
		emp.AssignedCount = 0
	}
}
