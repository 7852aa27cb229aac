package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnavshah/scheduler-cli-go/pkg/models"
)

// Staff loads an employee roster from a CSV with a "name" column and an
// optional "unavailable" column holding the same digit-string day notation
// as shift files. Blank means no requested days off.
func Staff(path string) ([]*models.Employee, error) {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return nil, fmt.Errorf("unsupported staff file %q: expected .csv", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open staff file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("staff file %q is empty", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read staff file header: %w", err)
	}

	cols := columnIndex(header)
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("staff file is missing the %q column", "name")
	}

	var employees []*models.Employee
	seen := make(map[string]bool)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read staff file: %w", err)
		}
		line++

		name := field(record, cols, "name")
		if name == "" {
			return nil, fmt.Errorf("staff file line %d: employee has no name", line)
		}
		if seen[name] {
			return nil, fmt.Errorf("staff file line %d: duplicate employee %q", line, name)
		}
		seen[name] = true

		var days []models.Weekday
		if spec := field(record, cols, "unavailable"); spec != "" {
			days, err = models.ParseDays(spec)
			if err != nil {
				return nil, fmt.Errorf("staff file line %d: %w", line, err)
			}
		}

		employees = append(employees, &models.Employee{
			Name:            name,
			UnavailableDays: days,
		})
	}

	if len(employees) == 0 {
		return nil, fmt.Errorf("staff file %q has no employees", filepath.Base(path))
	}
	return employees, nil
}
