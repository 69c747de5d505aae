package generator

import (
	"slices"

	"github.com/samber/lo"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

// Generator searches the per-subject candidate map for the best feasible
// schedule under the given preferences. A schedule holds at most one
// section per subject, never two sections meeting at overlapping times, and
// respects the unit and gap caps. Generators are pure: the same input
// yields an equally good result on every call, and distinct calls may run
// concurrently.
type Generator interface {
	Generate(coursesBySubject map[string][]Course, prefs Preferences) Result
}

// NewExhaustiveGenerator enumerates every subset of subjects and every
// section combination within each subset. Optimal, and exponential in the
// number of subjects.
func NewExhaustiveGenerator() Generator {
	return exhaustiveGenerator{}
}

// NewPartialGenerator dispatches on input size: exhaustive search up to
// SubjectWarningThreshold distinct subjects, a single greedy pass beyond.
func NewPartialGenerator() Generator {
	return partialGenerator{}
}

// NewGreedyGenerator builds a schedule in one pass without backtracking,
// trading optimality for near-linear runtime.
func NewGreedyGenerator() Generator {
	return greedyGenerator{}
}

// NewFastGenerator samples random combinations under a fixed attempt
// budget. The session carries the sampler's random source and the
// signatures of combinations already produced; a nil session starts a
// fresh one, losing the cross-call dedup guarantee.
func NewFastGenerator(session *Session) Generator {
	return fastGenerator{session: session}
}

// BestSchedule runs the generator and keeps only the course list, for
// callers indifferent to the score breakdown.
func BestSchedule(generator Generator, coursesBySubject map[string][]Course, prefs Preferences) []Course {
	return generator.Generate(coursesBySubject, prefs).Schedule
}

type partialGenerator struct{}

func (generator partialGenerator) Generate(coursesBySubject map[string][]Course, prefs Preferences) Result {
	populated := lo.CountBy(lo.Values(coursesBySubject), func(courses []Course) bool {
		return len(courses) > 0
	})
	if populated <= SubjectWarningThreshold {
		return exhaustiveGenerator{}.Generate(coursesBySubject, prefs)
	}
	return greedyGenerator{}.Generate(coursesBySubject, prefs)
}

// section pairs a candidate course with its normalized schedule so every
// strategy parses each candidate exactly once.
type section struct {
	course Course
	parsed *schedule.ParsedSchedule
}

// subjectsAndSections flattens the candidate map into parallel slices with
// subjects in sorted key order, dropping subjects that offer no sections.
// Sorted order keeps every strategy deterministic over map input.
func subjectsAndSections(coursesBySubject map[string][]Course) ([]string, [][]section) {
	subjects := lo.Keys(coursesBySubject)
	slices.Sort(subjects)

	kept := make([]string, 0, len(subjects))
	candidates := make([][]section, 0, len(subjects))
	for _, subject := range subjects {
		courses := coursesBySubject[subject]
		if len(courses) == 0 {
			continue
		}
		kept = append(kept, subject)
		candidates = append(candidates, lo.Map(courses, func(course Course, _ int) section {
			return section{course: course, parsed: course.Parsed()}
		}))
	}
	return kept, candidates
}

func coursesOf(sections []section) []Course {
	return lo.Map(sections, func(s section, _ int) Course {
		return s.course
	})
}

// conflictFree is the pairwise collision check over pre-parsed sections.
func conflictFree(sections []section) bool {
	for i := range sections {
		for j := i + 1; j < len(sections); j++ {
			if schedulesCollide(sections[i].parsed, sections[j].parsed) {
				return false
			}
		}
	}
	return true
}

// withinCaps checks the unit and gap constraints on a combination.
func withinCaps(courses []Course, prefs Preferences) bool {
	return !ExceedsMaxUnits(courses, prefs.MaxUnits) &&
		!ExceedsMaxGap(courses, prefs.MaxGapHours)
}

// Feasible is the full hard-constraint check: conflict-free, within the
// unit cap and within the gap cap. Every schedule a generator returns
// satisfies it.
func Feasible(courses []Course, prefs Preferences) bool {
	return IsConflictFree(courses) && withinCaps(courses, prefs)
}

// evaluate scores a feasible combination into a caller-facing result.
func evaluate(courses []Course, prefs Preferences) Result {
	return Result{
		Schedule:      courses,
		Score:         combinedScore(courses),
		TimePrefScore: ScoreByTimePreference(courses, prefs.PreferredTimeOfDayOrder),
		CampusDays:    CountCampusDays(courses),
	}
}

// better reports whether the challenger outranks the incumbent: higher
// score first, then lower time-preference score, then fewer campus days
// when the caller asked to minimize them. Remaining ties keep the
// incumbent, so enumeration order decides.
func better(challenger, incumbent Result, prefs Preferences) bool {
	if challenger.Score != incumbent.Score {
		return challenger.Score > incumbent.Score
	}
	if challenger.TimePrefScore != incumbent.TimePrefScore {
		return challenger.TimePrefScore < incumbent.TimePrefScore
	}
	if prefs.MinimizeCampusDays && challenger.CampusDays != incumbent.CampusDays {
		return challenger.CampusDays < incumbent.CampusDays
	}
	return false
}
