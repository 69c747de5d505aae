package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

var syntheticRooms = []string{"ACAD301", "ACAD412", "CASE203", "GLE701", "RTL210", "Online"}

// GenerateCatalog synthesizes a random catalog of the given shape for
// benchmarks and stress tests. Section schedules follow the handful of
// meeting patterns a real term catalog shows, including online rooms, TBA
// schedules and the occasional closed or overbooked section.
func GenerateCatalog(subjects, sectionsPerSubject int) []Course {
	courses := make([]Course, 0, subjects*sectionsPerSubject)

	id := 0
	for subject := range subjects {
		name := fmt.Sprintf("SUB%v", subject+1)
		for sec := range sectionsPerSubject {
			id++
			course := Course{
				ID:             fmt.Sprintf("%v", 10000+id),
				Subject:        name,
				Section:        fmt.Sprintf("G%v", sec+1),
				Title:          fmt.Sprintf("%v Lecture", name),
				Units:          "3",
				Enrolled:       rand.IntN(40),
				AvailableSlots: rand.IntN(45) - 2,
				IsClosed:       rand.IntN(10) == 0,
				OfferingDept:   "COLLEGE",
			}
			if rand.IntN(10) == 0 {
				course.CreditedUnits = "0"
			}
			course.Schedule, course.Room = randomSchedule()
			courses = append(courses, course)
		}
	}
	return courses
}

func randomSchedule() (raw string, room string) {
	room = syntheticRooms[rand.IntN(len(syntheticRooms))]

	switch rand.IntN(8) {
	case 0:
		return "TBA", room
	case 1, 2:
		start := 420 + 30*rand.IntN(20)
		return fmt.Sprintf("T/TH | %v-%v | %v", clockToken(start), clockToken(start+90), room), room
	case 3, 4, 5:
		start := 420 + 30*rand.IntN(22)
		return fmt.Sprintf("M/W/F | %v-%v | %v", clockToken(start), clockToken(start+60), room), room
	case 6:
		start := 420 + 30*rand.IntN(12)
		return fmt.Sprintf("S | %v-%v | %v", clockToken(start), clockToken(start+180), room), room
	default:
		lecture := 420 + 30*rand.IntN(16)
		lab := 420 + 30*rand.IntN(16)
		return fmt.Sprintf("M | %v-%v | %v + F | %v-%v | %v",
			clockToken(lecture), clockToken(lecture+60), room,
			clockToken(lab), clockToken(lab+120), room), room
	}
}

// clockToken renders minutes since midnight in the catalog's 12-hour form.
func clockToken(minutes int) string {
	hour, minute := minutes/60, minutes%60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%v:%02d%v", hour, minute, meridiem)
}

// AssertGenerationResult checks a result against the candidates it was
// generated from: each course must be one of its subject's candidates, no
// subject may appear twice, the score must match the schedule, and the
// combination must satisfy every hard constraint.
func AssertGenerationResult(coursesBySubject map[string][]Course, prefs Preferences, result Result) bool {
	seen := make(map[string]bool)
	for _, course := range result.Schedule {
		if seen[course.Subject] {
			return false
		}
		seen[course.Subject] = true

		if !lo.SomeBy(coursesBySubject[course.Subject], func(candidate Course) bool {
			return candidate.Key() == course.Key()
		}) {
			return false
		}
	}

	if result.Score != combinedScore(result.Schedule) {
		return false
	}
	return Feasible(result.Schedule, prefs)
}
