package generator

import (
	"slices"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

type greedyGenerator struct{}

// Generate makes a single pass over the subjects. Each subject contributes
// its best-ranked candidate that fits against everything accepted so far,
// or nothing when no candidate fits. Earlier acceptances are never revised,
// which is what keeps the pass near-linear on inputs too large for
// exhaustive search.
func (generator greedyGenerator) Generate(coursesBySubject map[string][]Course, prefs Preferences) Result {
	_, candidates := subjectsAndSections(coursesBySubject)

	acceptedCourses := make([]Course, 0, len(candidates))
	acceptedParsed := make([]*schedule.ParsedSchedule, 0, len(candidates))

	for _, sections := range candidates {
		bestIndex := -1
		bestScore := 0
		for i, candidate := range sections {
			if collidesWithAny(candidate.parsed, acceptedParsed) {
				continue
			}
			trial := append(slices.Clone(acceptedCourses), candidate.course)
			if !withinCaps(trial, prefs) {
				continue
			}

			// The preference score decomposes per slot, so candidates of one
			// subject are compared on their own slots alone.
			score := ScoreByTimePreference([]Course{candidate.course}, prefs.PreferredTimeOfDayOrder)
			if bestIndex == -1 || score < bestScore {
				bestIndex = i
				bestScore = score
			}
		}
		if bestIndex >= 0 {
			acceptedCourses = append(acceptedCourses, sections[bestIndex].course)
			acceptedParsed = append(acceptedParsed, sections[bestIndex].parsed)
		}
	}

	if len(acceptedCourses) == 0 {
		return emptyResult()
	}
	return evaluate(acceptedCourses, prefs)
}
