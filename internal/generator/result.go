package generator

// Result is the outcome of one generation call, owned by the caller.
// Schedule holds at most one course per subject in a strategy-defined
// order; aggregates the caller may want to display, total units or section
// counts say, are computed from Schedule rather than stored here.
type Result struct {
	Schedule      []Course
	Score         float64
	TimePrefScore int
	CampusDays    int
}

// Empty reports whether the search found no feasible non-empty combination.
func (result Result) Empty() bool {
	return len(result.Schedule) == 0
}

func emptyResult() Result {
	return Result{Schedule: []Course{}}
}
