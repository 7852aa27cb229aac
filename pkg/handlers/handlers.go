// Package handlers wires the scheduling engine into a JSON API, one
// stateless assignment run per request.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Log     *logrus.Logger
	Version string
}

// NewHandler creates a new handler instance
func NewHandler(log *logrus.Logger, version string) *Handler {
	return &Handler{Log: log, Version: version}
}

// Router builds the gin engine with every route attached
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.RequestLogger())

	r.GET("/", h.Banner)

	api := r.Group("/api")
	{
		api.POST("/schedule", h.Schedule)
		api.POST("/validate", h.ValidateInput)
	}
	return r
}

// RequestLogger logs each request with its status and duration
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.Log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}

// Banner reports the service name and version
func (h *Handler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Shift Scheduler API (Go Version)",
		"version":   h.Version,
		"endpoints": []string{"POST /api/schedule", "POST /api/validate"},
	})
}

// Schedule runs one assignment pass over the posted input. Strict-mode
// failures come back as 409 with the unfillable cells so the client can
// re-post with mode relaxed
func (h *Handler) Schedule(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "problems": bindingErrors(err)})
		return
	}

	if problems := inputProblems(input); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": problems[0], "problems": problems})
		return
	}

	mode, _ := scheduler.ParseMode(input.Mode)

	if err := scheduler.EnsureMinimumStaff(len(input.Employees), input.Headcount); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cells, err := scheduler.BuildDemand(input.Shifts, input.Headcount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employees := make([]*models.Employee, len(input.Employees))
	for i := range input.Employees {
		employees[i] = &input.Employees[i]
	}

	var s *scheduler.Scheduler
	if input.Seed != nil {
		s = scheduler.NewSeeded(employees, *input.Seed)
	} else {
		s = scheduler.New(employees)
	}

	runID := uuid.NewString()

	roster, err := s.Assign(cells, mode)
	if err != nil {
		var unfilled *scheduler.UnfilledError
		if errors.As(err, &unfilled) {
			h.Log.WithFields(logrus.Fields{
				"run_id":   runID,
				"mode":     string(mode),
				"unfilled": len(unfilled.Cells),
			}).Info("assignment left cells unfilled")
			c.JSON(http.StatusConflict, gin.H{
				"error":    err.Error(),
				"unfilled": unfilled.Cells,
				"hint":     `retry with "mode": "relaxed" to ignore requested days off`,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Log.WithFields(logrus.Fields{
		"run_id":    runID,
		"mode":      string(mode),
		"cells":     len(cells),
		"employees": len(employees),
	}).Info("schedule produced")

	c.JSON(http.StatusOK, models.ScheduleResponse{
		RunID:         runID,
		Mode:          string(mode),
		Assignments:   assignmentsByShift(input.Shifts, roster),
		FairnessScore: s.CalculateFairnessScore(),
		Employees:     employeeCounts(employees),
	})
}

// assignmentsByShift flattens the roster for JSON: shift -> weekday name ->
// employee names, matching the shape of the original program's output
func assignmentsByShift(shifts []models.ShiftDefinition, roster models.Roster) map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(shifts))
	for _, shift := range shifts {
		days := make(map[string][]string, len(shift.Days))
		for _, day := range shift.Days {
			if names := roster.Assigned(day, shift.Name); len(names) > 0 {
				days[day.String()] = names
			}
		}
		out[shift.Name] = days
	}
	return out
}

func employeeCounts(employees []*models.Employee) map[string]int {
	counts := make(map[string]int, len(employees))
	for _, emp := range employees {
		counts[emp.Name] = emp.AssignedCount
	}
	return counts
}

// inputProblems runs the structural checks shared by the schedule and
// validate endpoints
func inputProblems(input models.ScheduleInput) []string {
	var problems []string

	seenShifts := make(map[string]bool, len(input.Shifts))
	for _, shift := range input.Shifts {
		if err := shift.Validate(); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if seenShifts[shift.Name] {
			problems = append(problems, fmt.Sprintf("duplicate shift name %q", shift.Name))
		}
		seenShifts[shift.Name] = true
	}

	seenEmployees := make(map[string]bool, len(input.Employees))
	for _, emp := range input.Employees {
		name := strings.TrimSpace(emp.Name)
		if name == "" {
			problems = append(problems, "employee has no name")
			continue
		}
		if seenEmployees[name] {
			problems = append(problems, fmt.Sprintf("duplicate employee %q", name))
		}
		seenEmployees[name] = true
		for _, d := range emp.UnavailableDays {
			if !d.Valid() {
				problems = append(problems, fmt.Sprintf("employee %q: invalid day %d", name, int(d)))
			}
		}
	}

	if input.Headcount < 1 {
		problems = append(problems, fmt.Sprintf("minimum headcount must be at least 1, got %d", input.Headcount))
	}
	if _, err := scheduler.ParseMode(input.Mode); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

// bindingErrors flattens validator failures into readable messages
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s failed the %q rule", fe.Namespace(), fe.Tag()))
	}
	return out
}
