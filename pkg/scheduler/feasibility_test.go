package scheduler

import (
	"errors"
	"testing"
)

func TestCheckMinimumStaff(t *testing.T) {
	if !CheckMinimumStaff(3, 2) {
		t.Errorf("Expected 3 employees to cover headcount 2")
	}
	if !CheckMinimumStaff(2, 2) {
		t.Errorf("Expected 2 employees to cover headcount 2 exactly")
	}
	if CheckMinimumStaff(1, 2) {
		t.Errorf("Expected 1 employee to fail headcount 2")
	}
}

func TestEnsureMinimumStaff(t *testing.T) {
	if err := EnsureMinimumStaff(4, 2); err != nil {
		t.Errorf("Expected no error for a sufficient pool, got %v", err)
	}

	err := EnsureMinimumStaff(1, 2)
	if err == nil {
		t.Fatalf("Expected an error for an undersized pool")
	}

	var staffErr *InsufficientStaffError
	if !errors.As(err, &staffErr) {
		t.Fatalf("Expected an *InsufficientStaffError, got %T", err)
	}
	if staffErr.Employees != 1 || staffErr.Required != 2 {
		t.Errorf("Expected have 1 need 2, got have %d need %d", staffErr.Employees, staffErr.Required)
	}
}
