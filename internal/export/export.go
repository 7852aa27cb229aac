// Package export writes a finished roster to disk, either as the rendered
// weekly table or as CSV rows, picked by the filename extension.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnavshah/scheduler-cli-go/internal/render"
	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// Write saves the roster to path. ".csv" produces one row per assignment,
// anything else the rendered weekly table.
func Write(path string, shifts []models.ShiftDefinition, roster models.Roster) error {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return writeCSV(path, shifts, roster)
	}
	return writeText(path, shifts, roster)
}

func writeText(path string, shifts []models.ShiftDefinition, roster models.Roster) error {
	content := render.RosterTable(shifts, roster)
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

func writeCSV(path string, shifts []models.ShiftDefinition, roster models.Roster) error {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"shift", "weekday", "employee"}); err != nil {
		return fmt.Errorf("write schedule csv: %w", err)
	}
	for _, shift := range shifts {
		for _, day := range shift.Days {
			for _, name := range roster.Assigned(day, shift.Name) {
				if err := w.Write([]string{shift.Name, day.String(), name}); err != nil {
					return fmt.Errorf("write schedule csv: %w", err)
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write schedule csv: %w", err)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}
