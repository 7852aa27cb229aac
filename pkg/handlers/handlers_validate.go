package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

// ValidateInput reports the structural problems in a schedule input without
// running an assignment. Malformed JSON is a 400; a well-formed input with
// semantic problems still answers 200 so clients can show the full list
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidateResponse{
			Valid:  false,
			Errors: bindingErrors(err),
		})
		return
	}

	problems := inputProblems(input)
	if !scheduler.CheckMinimumStaff(len(input.Employees), input.Headcount) {
		problems = append(problems, (&scheduler.InsufficientStaffError{
			Employees: len(input.Employees),
			Required:  input.Headcount,
		}).Error())
	}

	if len(problems) > 0 {
		c.JSON(http.StatusOK, models.ValidateResponse{Valid: false, Errors: problems})
		return
	}

	cellCount := 0
	for _, shift := range input.Shifts {
		cellCount += len(shift.Days)
	}

	c.JSON(http.StatusOK, models.ValidateResponse{
		Valid: true,
		Stats: map[string]int{
			"shift_count":    len(input.Shifts),
			"employee_count": len(input.Employees),
			"cell_count":     cellCount,
		},
	})
}
