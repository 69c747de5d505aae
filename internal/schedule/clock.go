package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ToClock converts a 12-hour boundary such as "9:00AM" or "12:05 pm" into a
// zero-padded 24-hour "HH:MM" string. The meridiem is case-insensitive and
// may be separated from the digits by whitespace. ok is false for anything
// that is not a well-formed 12-hour boundary.
func ToClock(token string) (clock string, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(token))

	var pm bool
	switch {
	case strings.HasSuffix(upper, "AM"):
		pm = false
	case strings.HasSuffix(upper, "PM"):
		pm = true
	default:
		return "", false
	}
	upper = strings.TrimSpace(upper[:len(upper)-2])

	hourPart, minutePart, found := strings.Cut(upper, ":")
	if !found || len(minutePart) != 2 {
		return "", false
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	// 12:xxAM is midnight, 12:xxPM is noon.
	if !pm && hour == 12 {
		hour = 0
	} else if pm && hour != 12 {
		hour += 12
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// ValidClock reports whether s is a zero-padded 24-hour "HH:MM" string.
// Fixed-width clocks make lexical and chronological order identical.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

// ClockMinutes converts a valid "HH:MM" clock into minutes since midnight.
func ClockMinutes(s string) (minutes int, ok bool) {
	if !ValidClock(s) {
		return 0, false
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	return hour*60 + minute, true
}

// Overlaps reports whether the half-open ranges [start1,end1) and
// [start2,end2) intersect, so back-to-back meetings sharing a boundary do
// not overlap. Any argument failing "HH:MM" validation makes the ranges
// non-comparable and the answer false.
func Overlaps(start1, end1, start2, end2 string) bool {
	if !ValidClock(start1) || !ValidClock(end1) || !ValidClock(start2) || !ValidClock(end2) {
		return false
	}
	return start1 < end2 && start2 < end1
}
