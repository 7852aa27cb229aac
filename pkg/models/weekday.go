package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Weekday numbers the days Monday through Sunday as 1 through 7
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays lists the seven weekdays in calendar order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// Valid reports whether d is one of the seven calendar weekdays
func (d Weekday) Valid() bool {
	_, ok := weekdayNames[d]
	return ok
}

// ParseWeekday converts a single day token like "5" into a Weekday
func ParseWeekday(s string) (Weekday, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: must be a number between 1 and 7", s)
	}
	d := Weekday(n)
	if !d.Valid() {
		return 0, fmt.Errorf("invalid day %q: must be between 1 and 7", s)
	}
	return d, nil
}

// ParseDays parses the shift-file day notation: a string of digit characters
// '1'-'7' with no separators, e.g. "12345" for Monday through Friday.
// Duplicates collapse and the result is in calendar order
func ParseDays(spec string) ([]Weekday, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("day specifier is empty")
	}
	seen := make(map[Weekday]bool)
	for _, r := range spec {
		if r < '1' || r > '7' {
			return nil, fmt.Errorf("invalid day %q in specifier %q: must be between 1 and 7", string(r), spec)
		}
		seen[Weekday(r-'0')] = true
	}
	return sortedDays(seen), nil
}

// ParseDayList parses the comma-separated day notation used for employee
// unavailability, e.g. "1,7". Blank input means no days
func ParseDayList(s string) ([]Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	seen := make(map[Weekday]bool)
	for _, tok := range strings.Split(s, ",") {
		d, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		seen[d] = true
	}
	return sortedDays(seen), nil
}

func sortedDays(seen map[Weekday]bool) []Weekday {
	days := make([]Weekday, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
