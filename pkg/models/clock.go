package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// ClockTime is a time of day stored as minutes since midnight. Shifts never
// cross midnight, so plain minute ordering is enough
type ClockTime int

// ParseClock parses a time of day such as "08:30"
func ParseClock(s string) (ClockTime, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return ClockTime(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Before reports whether t is earlier in the day than other
func (t ClockTime) Before(other ClockTime) bool {
	return t < other
}

// MarshalJSON encodes the time as its "HH:MM" string form
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the same "HH:MM" form ParseClock does
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
