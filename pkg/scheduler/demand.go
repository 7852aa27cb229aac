package scheduler

import (
	"fmt"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// BuildDemand expands each shift across its weekdays into one DemandCell per
// (weekday, shift) pair, each requiring headcount employees
func BuildDemand(shifts []models.ShiftDefinition, headcount int) ([]models.DemandCell, error) {
	if headcount < 1 {
		return nil, fmt.Errorf("minimum headcount must be at least 1, got %d", headcount)
	}
	if len(shifts) == 0 {
		return nil, fmt.Errorf("shift list is empty")
	}

	var cells []models.DemandCell
	for _, shift := range shifts {
		for _, day := range shift.Days {
			cells = append(cells, models.DemandCell{
				Day:      day,
				Shift:    shift.Name,
				Required: headcount,
			})
		}
	}
	return cells, nil
}
