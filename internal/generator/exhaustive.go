package generator

import (
	"iter"
	"slices"
)

type exhaustiveGenerator struct{}

func (generator exhaustiveGenerator) Generate(coursesBySubject map[string][]Course, prefs Preferences) Result {
	_, candidates := subjectsAndSections(coursesBySubject)

	best := emptyResult()
	for subset := range subsets(candidates) {
		for combination := range products(subset) {
			if !conflictFree(combination) {
				continue
			}
			courses := coursesOf(combination)
			if !withinCaps(courses, prefs) {
				continue
			}
			result := evaluate(courses, prefs)
			if better(result, best, prefs) {
				best = result
			}
		}
	}
	return best
}

// subsets yields every subset of the candidate lists without materializing
// the power set, the empty subset first. The yielded slice is freshly
// cloned, so consumers may retain it across iterations.
func subsets(candidates [][]section) iter.Seq[[][]section] {
	return func(yield func([][]section) bool) {
		current := make([][]section, 0, len(candidates))

		var walk func(index int) bool
		walk = func(index int) bool {
			if index == len(candidates) {
				return yield(slices.Clone(current))
			}
			if !walk(index + 1) {
				return false
			}
			current = append(current, candidates[index])
			ok := walk(index + 1)
			current = current[:len(current)-1]
			return ok
		}

		walk(0)
	}
}

// products yields the Cartesian product of one section per candidate list,
// lazily. Lists must be non-empty; an empty lists slice yields the single
// empty combination, the zero-course baseline of an exhaustive search.
func products(lists [][]section) iter.Seq[[]section] {
	return func(yield func([]section) bool) {
		if len(lists) == 0 {
			yield([]section{})
			return
		}

		indices := make([]int, len(lists))
		for {
			combination := make([]section, len(lists))
			for i, list := range lists {
				combination[i] = list[indices[i]]
			}
			if !yield(combination) {
				return
			}

			//** Advance the index odometer, rightmost position first
			position := len(indices) - 1
			for position >= 0 {
				indices[position]++
				if indices[position] < len(lists[position]) {
					break
				}
				indices[position] = 0
				position--
			}
			if position < 0 {
				return
			}
		}
	}
}
