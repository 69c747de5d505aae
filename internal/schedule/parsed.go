package schedule

import (
	"slices"

	"github.com/samber/lo"
)

// ScheduleKind tags the three shapes a normalized schedule can take.
type ScheduleKind int

const (
	KindTBA ScheduleKind = iota
	KindSingleSlot
	KindMultiSlot
)

// ParsedSchedule is the normalized form of a raw meeting-schedule string.
// Values are built by Parse only, so a TBA schedule can never carry slots
// and a non-TBA schedule always carries at least one.
type ParsedSchedule struct {
	kind  ScheduleKind
	slots []TimeSlot
	raw   string
}

func newTBASchedule(raw string) *ParsedSchedule {
	return &ParsedSchedule{kind: KindTBA, raw: raw}
}

func newSlotSchedule(raw string, slots []TimeSlot) *ParsedSchedule {
	kind := KindSingleSlot
	if len(slots) > 1 {
		kind = KindMultiSlot
	}
	return &ParsedSchedule{kind: kind, slots: slots, raw: raw}
}

func (parsed *ParsedSchedule) Kind() ScheduleKind {
	return parsed.kind
}

// IsTBA reports whether the section has no fixed meeting time at all.
func (parsed *ParsedSchedule) IsTBA() bool {
	return parsed.kind == KindTBA
}

// Slots returns every meeting unit in original order; empty for TBA.
func (parsed *ParsedSchedule) Slots() []TimeSlot {
	return parsed.slots
}

// Raw returns the schedule string the value was parsed from.
func (parsed *ParsedSchedule) Raw() string {
	return parsed.raw
}

// Days returns the union of all slot days in canonical Monday-to-Sunday
// order. Derived from the slots on every call, never stored.
func (parsed *ParsedSchedule) Days() []DayCode {
	days := lo.Uniq(lo.FlatMap(parsed.slots, func(slot TimeSlot, _ int) []DayCode {
		return slot.Days
	}))
	slices.SortFunc(days, func(a, b DayCode) int {
		return dayOrder[a] - dayOrder[b]
	})
	return days
}

// StartTime returns the first slot's start boundary, empty when the
// schedule is TBA or the first slot carries no times.
func (parsed *ParsedSchedule) StartTime() string {
	if len(parsed.slots) == 0 {
		return ""
	}
	return parsed.slots[0].StartTime
}

// EndTime returns the first slot's end boundary, empty when the schedule is
// TBA or the first slot carries no times.
func (parsed *ParsedSchedule) EndTime() string {
	if len(parsed.slots) == 0 {
		return ""
	}
	return parsed.slots[0].EndTime
}
