// Package loader reads shift and staff lists from disk. The CSV layouts
// match the original scheduler's files: shifts carry a "days" column written
// as a digit string ("12345" = Monday through Friday).
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

var shiftColumns = []string{"shift", "start", "end", "days"}

// Shifts loads a shift list, picking the format from the file extension.
func Shifts(path string) ([]models.ShiftDefinition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return shiftsCSV(path)
	case ".yaml", ".yml":
		return shiftsYAML(path)
	}
	return nil, fmt.Errorf("unsupported shift file %q: expected .csv, .yaml or .yml", filepath.Base(path))
}

func shiftsCSV(path string) ([]models.ShiftDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shift file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("shift file %q is empty", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read shift file header: %w", err)
	}

	cols := columnIndex(header)
	for _, name := range shiftColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("shift file is missing the %q column", name)
		}
	}

	var shifts []models.ShiftDefinition
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read shift file: %w", err)
		}
		line++

		shift, err := shiftFromRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("shift file line %d: %w", line, err)
		}
		shifts = append(shifts, shift)
	}

	return finishShifts(shifts, path)
}

type shiftEntry struct {
	Shift string `yaml:"shift"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Days  string `yaml:"days"`
}

type shiftFile struct {
	Shifts []shiftEntry `yaml:"shifts"`
}

func shiftsYAML(path string) ([]models.ShiftDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open shift file: %w", err)
	}

	var file shiftFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse shift file: %w", err)
	}

	shifts := make([]models.ShiftDefinition, 0, len(file.Shifts))
	for i, entry := range file.Shifts {
		shift, err := buildShift(entry.Shift, entry.Start, entry.End, entry.Days)
		if err != nil {
			return nil, fmt.Errorf("shift entry %d: %w", i+1, err)
		}
		shifts = append(shifts, shift)
	}

	return finishShifts(shifts, path)
}

func finishShifts(shifts []models.ShiftDefinition, path string) ([]models.ShiftDefinition, error) {
	if len(shifts) == 0 {
		return nil, fmt.Errorf("shift file %q has no shifts", filepath.Base(path))
	}
	seen := make(map[string]bool, len(shifts))
	for _, s := range shifts {
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate shift name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return shifts, nil
}

func shiftFromRecord(record []string, cols map[string]int) (models.ShiftDefinition, error) {
	return buildShift(
		field(record, cols, "shift"),
		field(record, cols, "start"),
		field(record, cols, "end"),
		field(record, cols, "days"),
	)
}

func buildShift(name, start, end, days string) (models.ShiftDefinition, error) {
	var shift models.ShiftDefinition

	startClock, err := models.ParseClock(start)
	if err != nil {
		return shift, err
	}
	endClock, err := models.ParseClock(end)
	if err != nil {
		return shift, err
	}
	parsedDays, err := models.ParseDays(days)
	if err != nil {
		return shift, err
	}

	shift = models.ShiftDefinition{
		Name:  strings.TrimSpace(name),
		Start: startClock,
		End:   endClock,
		Days:  parsedDays,
	}
	if err := shift.Validate(); err != nil {
		return models.ShiftDefinition{}, err
	}
	return shift, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
