package scheduler

import (
	"fmt"
	"strings"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// UnfilledCell describes one (weekday, shift) slot that could not be staffed
// to full headcount under the current mode
type UnfilledCell struct {
	Day     models.Weekday `json:"day"`
	Shift   string         `json:"shift"`
	Missing int            `json:"missing"`
	Reason  string         `json:"reason"`
}

// UnfilledError reports the cells a strict-mode run left unfillable. The
// caller may retry the same input in relaxed mode
type UnfilledError struct {
	Cells []UnfilledCell
}

func (e *UnfilledError) Error() string {
	parts := make([]string, 0, len(e.Cells))
	for _, c := range e.Cells {
		parts = append(parts, fmt.Sprintf("%s %s", c.Day, c.Shift))
	}
	return fmt.Sprintf("unable to fill %d shift cells: %s", len(e.Cells), strings.Join(parts, ", "))
}

// InsufficientStaffError means the employee pool can never fill a single
// cell, regardless of availability. A relaxed retry cannot fix it
type InsufficientStaffError struct {
	Employees int
	Required  int
}

func (e *InsufficientStaffError) Error() string {
	return fmt.Sprintf("not enough employees: have %d, need at least %d per shift", e.Employees, e.Required)
}
