package generator

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// Course is one section offering as imported from the catalog. The engine
// treats courses as immutable values: it selects subsets of its input and
// never rewrites a field.
type Course struct {
	ID             string
	Subject        string
	Section        string
	Title          string `mapstructure:"subjectTitle"`
	Schedule       string
	Room           string
	Units          string
	CreditedUnits  string `mapstructure:"creditedUnits"`
	Enrolled       int
	AvailableSlots int    `mapstructure:"availableSlots"`
	IsClosed       bool   `mapstructure:"isClosed"`
	OfferingDept   string `mapstructure:"offeringDept"`
}

// Key returns the identity of the offering. Two records with equal keys
// describe the same section.
func (course Course) Key() string {
	return fmt.Sprintf("%v/%v/%v", course.ID, course.Subject, course.Section)
}

// Parsed normalizes the course's raw schedule string, nil when the string
// cannot be fully understood.
func (course Course) Parsed() *schedule.ParsedSchedule {
	return schedule.Parse(course.Schedule)
}

// Open reports whether the section still admits enrollees.
func (course Course) Open() bool {
	return !course.IsClosed && course.AvailableSlots > 0
}

// GroupBySubject arranges a flat course list into the per-subject candidate
// map every strategy consumes.
func GroupBySubject(courses []Course) map[string][]Course {
	return lo.GroupBy(courses, func(course Course) string {
		return course.Subject
	})
}

// OpenSections filters the list down to sections that can still be taken.
func OpenSections(courses []Course) []Course {
	return lo.Filter(courses, func(course Course, _ int) bool {
		return course.Open()
	})
}
