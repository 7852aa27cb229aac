package scheduler

// CheckMinimumStaff reports whether the employee pool is large enough to
// ever fill one demand cell. It is a global precondition only: a pool that
// passes can still be unavailable on a specific day
func CheckMinimumStaff(employeeCount, headcount int) bool {
	return employeeCount >= headcount
}

// EnsureMinimumStaff wraps CheckMinimumStaff into the error callers surface
// before attempting any assignment
func EnsureMinimumStaff(employeeCount, headcount int) error {
	if CheckMinimumStaff(employeeCount, headcount) {
		return nil
	}
	return &InsufficientStaffError{Employees: employeeCount, Required: headcount}
}
