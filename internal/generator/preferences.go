package generator

// Mode selects the search strategy answering a generation call.
type Mode string

const (
	// ModeExhaustive enumerates every combination and is optimal.
	ModeExhaustive Mode = "exhaustive"
	// ModePartial dispatches on input size, exhaustive search for small
	// inputs and a greedy pass beyond the subject threshold.
	ModePartial Mode = "partial"
	// ModeFast samples random combinations under a fixed attempt budget.
	ModeFast Mode = "fast"
)

// AllModes lists every recognized search mode.
var AllModes = []Mode{ModeExhaustive, ModePartial, ModeFast}

// SubjectWarningThreshold is the distinct-subject count beyond which
// exhaustive search turns impractical. The dispatcher switches to the
// greedy pass past it, and callers forcing exhaustive mode above it should
// warn the user first.
const SubjectWarningThreshold = 12

// Preferences carries every knob a generation call honors. Caps are kept
// textual the way the catalog states units: an empty string leaves the
// constraint off.
type Preferences struct {
	MaxUnits                string      `mapstructure:"maxUnits"`
	MaxGapHours             string      `mapstructure:"maxGapHours"`
	PreferredTimeOfDayOrder []TimeOfDay `mapstructure:"preferredTimeOfDayOrder"`
	MinimizeCampusDays      bool        `mapstructure:"minimizeDaysOnCampus"`
	SearchMode              Mode        `mapstructure:"searchMode"`
}

// DefaultPreferences is the unconstrained baseline: no caps, no time-order
// preference, size-dispatched search.
func DefaultPreferences() Preferences {
	return Preferences{
		SearchMode: ModePartial,
	}
}
