package generator

import (
	"github.com/samber/lo"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// IsConflictFree reports whether no two courses in the set meet at an
// overlapping day and time. Unparseable and TBA schedules cannot conflict
// with anything, keeping such sections available rather than blocking a
// whole combination on text the parser could not understand.
func IsConflictFree(courses []Course) bool {
	parsed := lo.Map(courses, func(course Course, _ int) *schedule.ParsedSchedule {
		return course.Parsed()
	})

	for i := range parsed {
		for j := i + 1; j < len(parsed); j++ {
			if schedulesCollide(parsed[i], parsed[j]) {
				return false
			}
		}
	}
	return true
}

// schedulesCollide checks every slot pair sharing a day for a time overlap.
func schedulesCollide(a, b *schedule.ParsedSchedule) bool {
	if scheduleAgnostic(a) || scheduleAgnostic(b) {
		return false
	}

	for _, slotA := range a.Slots() {
		for _, slotB := range b.Slots() {
			if slotA.SharesDayWith(slotB) &&
				schedule.Overlaps(slotA.StartTime, slotA.EndTime, slotB.StartTime, slotB.EndTime) {
				return true
			}
		}
	}
	return false
}

// scheduleAgnostic reports whether the schedule carries nothing a conflict
// or gap check could act on.
func scheduleAgnostic(parsed *schedule.ParsedSchedule) bool {
	return parsed == nil || parsed.IsTBA() || len(parsed.Slots()) == 0
}

// collidesWithAny reports whether the candidate collides with at least one
// already accepted schedule.
func collidesWithAny(candidate *schedule.ParsedSchedule, accepted []*schedule.ParsedSchedule) bool {
	return lo.SomeBy(accepted, func(parsed *schedule.ParsedSchedule) bool {
		return schedulesCollide(candidate, parsed)
	})
}
