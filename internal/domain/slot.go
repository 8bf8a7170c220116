package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot identifies one fixed hourly bookable window, e.g. "16-17".
// The set of valid slots is closed and ordered (TimeSlots).
type TimeSlot string

// EndHour parses the second component of the slot identifier
// ("16-17" -> 17). Used to compute the expiry deadline.
func (s TimeSlot) EndHour() (int, error) {
	parts := strings.Split(string(s), "-")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time slot format: %q", string(s))
	}

	endHour, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time slot end hour: %q", string(s))
	}

	return endHour, nil
}

// String returns the slot identifier
func (s TimeSlot) String() string {
	return string(s)
}

// IsValidTimeSlot reports whether the identifier belongs to the closed slot set
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == TimeSlot(slot) {
			return true
		}
	}
	return false
}

// IsValidField reports whether the identifier belongs to the closed field set
func IsValidField(field string) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}
