package generator

import (
	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// sampleAttempts bounds one fast-mode call. Attempts are cheap, a shuffle
// and one greedy walk each, so the budget is generous.
const sampleAttempts = 1000

type fastGenerator struct {
	session *Session
}

// Generate draws up to sampleAttempts random combinations and keeps the
// best one the session has not produced before. Attempts that fail global
// validation or replay an earlier combination are discarded without
// consuming the dedup set. The loop ends early once a surviving attempt
// covers every subject.
func (generator fastGenerator) Generate(coursesBySubject map[string][]Course, prefs Preferences) Result {
	subjects, candidates := subjectsAndSections(coursesBySubject)

	session := generator.session
	if session == nil {
		session = NewSession()
	}

	best := emptyResult()
	for attempt := 0; attempt < sampleAttempts; attempt++ {
		combination := sampleCombination(candidates, session)
		if len(combination) == 0 {
			continue
		}

		//** Validate the attempt globally before it may count
		courses := coursesOf(combination)
		if !conflictFree(combination) || !withinCaps(courses, prefs) {
			continue
		}
		if session.replayed(courses) {
			continue
		}
		session.remember(courses)

		result := evaluate(courses, prefs)
		if better(result, best, prefs) {
			best = result
		}
		if len(combination) == len(subjects) {
			break
		}
	}
	return best
}

// sampleCombination shuffles each subject's candidates and keeps the first
// section that does not collide with what the attempt already holds,
// skipping subjects where every candidate collides.
func sampleCombination(candidates [][]section, session *Session) []section {
	picked := make([]section, 0, len(candidates))
	pickedParsed := make([]*schedule.ParsedSchedule, 0, len(candidates))

	for _, sections := range candidates {
		shuffled := make([]section, len(sections))
		copy(shuffled, sections)
		session.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		for _, candidate := range shuffled {
			if !collidesWithAny(candidate.parsed, pickedParsed) {
				picked = append(picked, candidate)
				pickedParsed = append(pickedParsed, candidate.parsed)
				break
			}
		}
	}
	return picked
}
