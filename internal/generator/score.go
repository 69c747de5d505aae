package generator

import (
	"slices"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// TimeOfDay buckets a meeting's start boundary into the coarse periods a
// preference order ranks.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	AnyTime   TimeOfDay = "any"
)

// AllTimesOfDay lists every bucket a preference order may rank.
var AllTimesOfDay = []TimeOfDay{Morning, Afternoon, Evening, AnyTime}

// Fixed-width clocks order lexically, so bucket boundaries are plain
// string comparisons.
const (
	noonClock    = "12:00"
	eveningClock = "17:00"
)

// BucketOf classifies a start boundary: before noon is morning, noon up to
// five is afternoon, five onward is evening. Absent or malformed boundaries
// land in the indifferent bucket.
func BucketOf(start string) TimeOfDay {
	switch {
	case !schedule.ValidClock(start):
		return AnyTime
	case start < noonClock:
		return Morning
	case start < eveningClock:
		return Afternoon
	default:
		return Evening
	}
}

// ScoreByTimePreference sums, over every timed slot in the set, the rank of
// the slot's start bucket within the preferred order. Front-of-order
// buckets and buckets the order does not mention cost nothing, so a lower
// score means meetings sit closer to the preferred periods. An empty order
// scores everything 0.
func ScoreByTimePreference(courses []Course, order []TimeOfDay) int {
	if len(order) == 0 {
		return 0
	}

	score := 0
	for _, course := range courses {
		parsed := course.Parsed()
		if scheduleAgnostic(parsed) {
			continue
		}
		for _, slot := range parsed.Slots() {
			if !slot.HasTimes() {
				continue
			}
			index := slices.Index(order, BucketOf(slot.StartTime))
			if index > 0 {
				score += index
			}
		}
	}
	return score
}

// combinedScore values subject coverage two orders of magnitude above unit
// weight, so a schedule covering one more subject always outranks any unit
// total.
func combinedScore(courses []Course) float64 {
	return float64(len(courses))*100 + TotalUnits(courses)
}
