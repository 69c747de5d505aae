package generator

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// parseCap interprets a textual constraint cap. An empty or non-numeric cap
// means unconstrained.
func parseCap(raw string) (value float64, bounded bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// CourseUnits returns the unit weight of one course: credited units when
// stated, the nominal units otherwise, zero when neither parses.
func CourseUnits(course Course) float64 {
	units := strings.TrimSpace(course.CreditedUnits)
	if units == "" {
		units = strings.TrimSpace(course.Units)
	}
	value, err := strconv.ParseFloat(units, 64)
	if err != nil {
		return 0
	}
	return value
}

// TotalUnits sums the unit weight of the whole set.
func TotalUnits(courses []Course) float64 {
	return lo.SumBy(courses, CourseUnits)
}

// ExceedsMaxUnits reports whether the set's total units break the cap. An
// empty cap never constrains.
func ExceedsMaxUnits(courses []Course, maxUnits string) bool {
	limit, bounded := parseCap(maxUnits)
	if !bounded {
		return false
	}
	return TotalUnits(courses) > limit
}

type meeting struct {
	start int
	end   int
}

// ExceedsMaxGap reports whether, on any single day, two consecutive
// meetings are separated by more free hours than the cap allows. Days with
// at most one meeting contribute no gap, and an empty cap never constrains.
func ExceedsMaxGap(courses []Course, maxGapHours string) bool {
	limit, bounded := parseCap(maxGapHours)
	if !bounded {
		return false
	}

	//** Collect every timed meeting per day across the whole set
	byDay := make(map[schedule.DayCode][]meeting)
	for _, course := range courses {
		parsed := course.Parsed()
		if scheduleAgnostic(parsed) {
			continue
		}
		for _, slot := range parsed.Slots() {
			start, startOk := schedule.ClockMinutes(slot.StartTime)
			end, endOk := schedule.ClockMinutes(slot.EndTime)
			if !startOk || !endOk {
				continue
			}
			for _, day := range slot.Days {
				byDay[day] = append(byDay[day], meeting{start: start, end: end})
			}
		}
	}

	//** Measure the idle stretch between consecutive meetings
	for _, meetings := range byDay {
		if len(meetings) < 2 {
			continue
		}
		slices.SortFunc(meetings, func(a, b meeting) int {
			return a.start - b.start
		})
		for i := 1; i < len(meetings); i++ {
			gap := float64(meetings[i].start-meetings[i-1].end) / 60
			if gap > limit {
				return true
			}
		}
	}
	return false
}

// CountCampusDays returns how many distinct days the set requires physical
// presence: days of slots held in a real room, where "online", "TBA" and a
// missing room mean no presence.
func CountCampusDays(courses []Course) int {
	campus := make(map[schedule.DayCode]bool)
	for _, course := range courses {
		parsed := course.Parsed()
		if scheduleAgnostic(parsed) {
			continue
		}
		for _, slot := range parsed.Slots() {
			if !onCampus(effectiveRoom(course, slot)) {
				continue
			}
			for _, day := range slot.Days {
				campus[day] = true
			}
		}
	}
	return len(campus)
}

// effectiveRoom prefers the slot's own room and falls back to the course's
// room column, since catalogs state the room in either place.
func effectiveRoom(course Course, slot schedule.TimeSlot) string {
	if slot.Room != "" {
		return slot.Room
	}
	return course.Room
}

func onCampus(room string) bool {
	switch strings.ToUpper(strings.TrimSpace(room)) {
	case "", "ONLINE", "TBA":
		return false
	}
	return true
}
