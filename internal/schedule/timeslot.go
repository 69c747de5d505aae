package schedule

import (
	"slices"

	"github.com/samber/lo"
)

// TimeSlot is one contiguous meeting unit within a section's pattern: a
// non-empty set of days, an optional "HH:MM" range and an optional room.
// When both boundaries are present, StartTime < EndTime holds.
type TimeSlot struct {
	Days      []DayCode
	StartTime string
	EndTime   string
	Room      string
}

// HasTimes reports whether both boundaries are present. Slots without times
// meet on known days at an unannounced hour.
func (slot TimeSlot) HasTimes() bool {
	return slot.StartTime != "" && slot.EndTime != ""
}

// SharesDayWith reports whether the two slots meet on at least one common day.
func (slot TimeSlot) SharesDayWith(other TimeSlot) bool {
	return lo.SomeBy(slot.Days, func(day DayCode) bool {
		return slices.Contains(other.Days, day)
	})
}
