package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
	"github.com/arnavshah/scheduler-cli-go/pkg/scheduler"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(log, "test").Router()
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func weekInput() models.ScheduleInput {
	return models.ScheduleInput{
		Shifts: []models.ShiftDefinition{
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
		},
		Employees: []models.Employee{
			{Name: "Alice"},
			{Name: "Bob"},
			{Name: "Charlie"},
		},
		Headcount: 1,
	}
}

func TestBanner(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "test", body["version"])
	assert.Contains(t, body["message"], "Shift Scheduler")
}

func TestSchedule(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/schedule", weekInput())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeJSON[models.ScheduleResponse](t, w)

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "strict", resp.Mode)
	assert.Greater(t, resp.FairnessScore, 0.0)
	assert.LessOrEqual(t, resp.FairnessScore, 100.0)

	require.Contains(t, resp.Assignments, "Morning")
	require.Contains(t, resp.Assignments, "Evening")
	assert.Len(t, resp.Assignments["Morning"], 5)
	assert.Len(t, resp.Assignments["Evening"], 2)
	assert.Equal(t, []string{"Alice"}, resp.Assignments["Morning"]["Monday"])

	total := 0
	for _, count := range resp.Employees {
		total += count
	}
	assert.Equal(t, 7, total, "every cell should be staffed exactly once")
}

func TestSchedule_StrictConflictThenRelaxed(t *testing.T) {
	r := testRouter()
	input := models.ScheduleInput{
		Shifts: []models.ShiftDefinition{
			{
				Name:  "Opening",
				Start: models.ClockTime(9 * 60),
				End:   models.ClockTime(17 * 60),
				Days:  []models.Weekday{models.Monday},
			},
		},
		Employees: []models.Employee{
			{Name: "Dana", UnavailableDays: []models.Weekday{models.Monday}},
		},
		Headcount: 1,
	}

	w := postJSON(t, r, "/api/schedule", input)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	conflict := decodeJSON[struct {
		Error    string                   `json:"error"`
		Unfilled []scheduler.UnfilledCell `json:"unfilled"`
		Hint     string                   `json:"hint"`
	}](t, w)
	require.Len(t, conflict.Unfilled, 1)
	assert.Equal(t, models.Monday, conflict.Unfilled[0].Day)
	assert.Equal(t, "Opening", conflict.Unfilled[0].Shift)
	assert.Equal(t, 1, conflict.Unfilled[0].Missing)
	assert.Contains(t, conflict.Hint, "relaxed")

	input.Mode = "relaxed"
	w = postJSON(t, r, "/api/schedule", input)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeJSON[models.ScheduleResponse](t, w)
	assert.Equal(t, "relaxed", resp.Mode)
	assert.Equal(t, []string{"Dana"}, resp.Assignments["Opening"]["Monday"])
}

func TestSchedule_InsufficientStaff(t *testing.T) {
	r := testRouter()
	input := weekInput()
	input.Headcount = 2
	input.Employees = input.Employees[:1]

	w := postJSON(t, r, "/api/schedule", input)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	body := decodeJSON[map[string]any](t, w)
	assert.Contains(t, body["error"], "not enough employees")
}

func TestSchedule_BadInput(t *testing.T) {
	r := testRouter()

	t.Run("missing shifts", func(t *testing.T) {
		input := weekInput()
		input.Shifts = nil
		w := postJSON(t, r, "/api/schedule", input)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid unavailable day", func(t *testing.T) {
		input := weekInput()
		input.Employees[0].UnavailableDays = []models.Weekday{models.Weekday(9)}
		w := postJSON(t, r, "/api/schedule", input)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate employee", func(t *testing.T) {
		input := weekInput()
		input.Employees = append(input.Employees, models.Employee{Name: "Alice"})
		w := postJSON(t, r, "/api/schedule", input)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeJSON[map[string]any](t, w)
		assert.Contains(t, body["error"], "duplicate employee")
	})

	t.Run("backwards shift times", func(t *testing.T) {
		input := weekInput()
		input.Shifts[0].Start, input.Shifts[0].End = input.Shifts[0].End, input.Shifts[0].Start
		w := postJSON(t, r, "/api/schedule", input)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSchedule_SeededRunsMatch(t *testing.T) {
	r := testRouter()
	seed := int64(42)
	input := weekInput()
	input.Seed = &seed

	first := decodeJSON[models.ScheduleResponse](t, postJSON(t, r, "/api/schedule", input))
	second := decodeJSON[models.ScheduleResponse](t, postJSON(t, r, "/api/schedule", input))

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Employees, second.Employees)
	assert.NotEqual(t, first.RunID, second.RunID, "run IDs are per-request")
}

func TestValidate(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/validate", weekInput())
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[models.ValidateResponse](t, w)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 2, resp.Stats["shift_count"])
	assert.Equal(t, 3, resp.Stats["employee_count"])
	assert.Equal(t, 7, resp.Stats["cell_count"])
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	r := testRouter()
	input := weekInput()
	input.Shifts = append(input.Shifts, input.Shifts[0])
	input.Employees = append(input.Employees, models.Employee{Name: "Bob"})
	input.Headcount = 10

	w := postJSON(t, r, "/api/validate", input)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[models.ValidateResponse](t, w)
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 3)
	assert.Contains(t, resp.Errors[0], `duplicate shift name "Morning"`)
	assert.Contains(t, resp.Errors[1], `duplicate employee "Bob"`)
	assert.Contains(t, resp.Errors[2], "not enough employees")
}

func TestValidate_MalformedBody(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader("[]"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON[models.ValidateResponse](t, w)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)
}
