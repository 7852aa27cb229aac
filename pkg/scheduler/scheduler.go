package scheduler

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// Mode selects how the engine treats requested unavailable days
type Mode string

const (
	// ModeStrict honors every employee's unavailable days
	ModeStrict Mode = "strict"
	// ModeRelaxed ignores unavailability and fills purely by even distribution
	ModeRelaxed Mode = "relaxed"
)

// ParseMode converts the wire/flag form of a mode. Blank means strict
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeStrict):
		return ModeStrict, nil
	case string(ModeRelaxed):
		return ModeRelaxed, nil
	}
	return "", fmt.Errorf("unknown mode %q: expected strict or relaxed", s)
}

// Scheduler handles the logic of assigning employees to shift cells
type Scheduler struct {
	Employees []*models.Employee
	Index     *Index
	rng       *rand.Rand
}

// New creates a scheduler with the deterministic first-encountered tie-break
func New(employees []*models.Employee) *Scheduler {
	return &Scheduler{
		Employees: employees,
		Index:     NewIndex(employees),
	}
}

// NewSeeded creates a scheduler that breaks fairness ties with a seeded
// random pick instead of input order. Nothing else is randomized
func NewSeeded(employees []*models.Employee, seed int64) *Scheduler {
	s := New(employees)
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Assign fills every demand cell and returns the roster. Cells are processed
// in weekday-then-shift-name order regardless of input order, and every
// employee's assigned count starts the run at zero. In strict mode any cell
// that cannot reach full headcount fails the run with an *UnfilledError
// listing the cells; in relaxed mode an undersized pool is a partial fill,
// never an error
func (s *Scheduler) Assign(cells []models.DemandCell, mode Mode) (models.Roster, error) {
	s.Index.Reset()

	ordered := make([]models.DemandCell, len(cells))
	copy(ordered, cells)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day < ordered[j].Day
		}
		return ordered[i].Shift < ordered[j].Shift
	})

	roster := make(models.Roster, len(ordered))
	var unfilled []UnfilledCell

	for _, cell := range ordered {
		key := models.CellKey{Day: cell.Day, Shift: cell.Shift}

		inCell := make(map[string]bool, cell.Required)
		for _, name := range roster[key] {
			inCell[name] = true
		}

		unavailableCount := 0
		pool := make([]*models.Employee, 0, len(s.Employees))
		for _, emp := range s.Employees {
			if inCell[emp.Name] {
				continue
			}
			if mode == ModeStrict && !s.Index.IsAvailable(emp, cell.Day) {
				unavailableCount++
				continue
			}
			pool = append(pool, emp)
		}

		needed := cell.Required - len(roster[key])
		if needed <= 0 {
			continue
		}

		take := needed
		if len(pool) < take {
			take = len(pool)
		}
		for i := 0; i < take; i++ {
			pick := s.pickLeastLoaded(pool)
			roster[key] = append(roster[key], pick.Name)
			s.Index.RecordAssignment(pick)
			pool = removeEmployee(pool, pick)
		}

		if mode == ModeStrict && take < needed {
			unfilled = append(unfilled, UnfilledCell{
				Day:     cell.Day,
				Shift:   cell.Shift,
				Missing: needed - take,
				Reason:  s.unfilledReason(cell, unavailableCount),
			})
		}
	}

	if len(unfilled) > 0 {
		return nil, &UnfilledError{Cells: unfilled}
	}
	return roster, nil
}

// pickLeastLoaded defers to the index scan unless a seeded source was
// injected, in which case equally-loaded candidates are picked at random
func (s *Scheduler) pickLeastLoaded(pool []*models.Employee) *models.Employee {
	best := s.Index.LeastLoaded(pool)
	if s.rng == nil || best == nil {
		return best
	}
	ties := make([]*models.Employee, 0, len(pool))
	for _, emp := range pool {
		if emp.AssignedCount == best.AssignedCount {
			ties = append(ties, emp)
		}
	}
	return ties[s.rng.Intn(len(ties))]
}

func (s *Scheduler) unfilledReason(cell models.DemandCell, unavailable int) string {
	if unavailable > 0 {
		return fmt.Sprintf("%d of %d employees are unavailable on %s", unavailable, len(s.Employees), cell.Day)
	}
	return fmt.Sprintf("only %d employees for %d seats", len(s.Employees), cell.Required)
}

func removeEmployee(pool []*models.Employee, emp *models.Employee) []*models.Employee {
	for i, cand := range pool {
		if cand == emp {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

// CalculateFairnessScore returns a percentage (0-100) representing how evenly
// shifts are distributed. 100% is perfectly fair (Standard Deviation = 0).
func (s *Scheduler) CalculateFairnessScore() float64 {
	if len(s.Employees) == 0 {
		return 100.0
	}

	var sum float64
	for _, emp := range s.Employees {
		sum += float64(emp.AssignedCount)
	}

	if sum == 0 {
		return 100.0 // Everyone having 0 shifts is perfectly fair
	}

	mean := sum / float64(len(s.Employees))

	var varianceSum float64
	for _, emp := range s.Employees {
		diff := float64(emp.AssignedCount) - mean
		varianceSum += diff * diff
	}
	variance := varianceSum / float64(len(s.Employees))
	stdDev := math.Sqrt(variance)

	// Convert SD to a percentage relative to the mean
	// 100% means SD is 0. 0% means SD is >= mean.
	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
