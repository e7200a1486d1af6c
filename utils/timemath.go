package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 1440

// ToMinutes converts an "HH:MM" clock string to minutes since midnight.
// Malformed input yields 0; callers that face user input must validate
// with ParseClock first.
func ToMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// AddMinutes shifts an "HH:MM" clock by delta minutes, wrapping at the 24h
// boundary. It never carries into a new date; bookings spanning midnight are
// not supported and must be rejected upstream.
func AddMinutes(clock string, delta int) string {
	total := (ToMinutes(clock) + delta) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IntervalsOverlap reports whether [startA, endA) and [startB, endB) overlap.
// Half-open semantics: back-to-back intervals sharing a boundary do not
// overlap.
func IntervalsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// ParseClock is the strict counterpart of ToMinutes, used at the request
// boundary. Requires zero-padded 24-hour "HH:MM".
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate validates a calendar date in "YYYY-MM-DD" form.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}
