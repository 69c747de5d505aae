package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/generator"
)

var (
	validModes = lo.Map(generator.AllModes, func(mode generator.Mode, _ int) string {
		return string(mode)
	})
	generators = map[generator.Mode]func(session *generator.Session) generator.Generator{
		generator.ModeExhaustive: func(*generator.Session) generator.Generator {
			return generator.NewExhaustiveGenerator()
		},
		generator.ModePartial: func(*generator.Session) generator.Generator {
			return generator.NewPartialGenerator()
		},
		generator.ModeFast: generator.NewFastGenerator,
	}
)

func main() {
	// Define arguments
	catalogPtr := flag.String("catalog", "", "Path to the course catalog JSON file")
	prefsPtr := flag.String("prefs", "", "Path to a preference record JSON file; the flags below override its fields")
	modePtr := flag.String("mode", "", `Search mode. Allowed values are:
- "exhaustive" (enumerates every combination, optimal but exponential),
- "partial" (exhaustive up to the subject threshold, one greedy pass beyond; the default) and
- "fast" (random sampling under a fixed attempt budget)`)
	maxUnitsPtr := flag.String("max-units", "", "Unit cap; empty leaves the total unconstrained")
	maxGapPtr := flag.String("max-gap", "", "Largest tolerated idle stretch between same-day meetings, in hours; empty tolerates any gap")
	timeOrderPtr := flag.String("time-order", "", "Comma-separated time-of-day preference, most preferred first. Allowed values are: \"morning\", \"afternoon\", \"evening\", \"any\"")
	minimizeDaysPtr := flag.Bool("minimize-days", false, "Break score ties toward schedules needing fewer days on campus")
	openOnlyPtr := flag.Bool("open-only", false, "Drop closed and fully booked sections before searching")
	seedPtr := flag.Int64("seed", 0, "Seed for fast-mode sampling; 0 seeds from the clock")
	outPtr := flag.String("out", "", "Path to the file where the result will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	catalogFile := *catalogPtr
	prefsFile := *prefsPtr
	mode := strings.ToLower(*modePtr)
	outFile := *outPtr

	// Validate arguments
	if catalogFile == "" {
		log.Fatal("a catalog file must be specified")
	} else if mode != "" && !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid search mode", mode)
	}

	// Assemble preferences from the record file and the flag overrides
	prefs := generator.DefaultPreferences()
	if prefsFile != "" {
		var err error
		prefs, err = generator.PreferencesFromJson(prefsFile)
		if err != nil {
			log.Fatalf("cannot parse preference file: %v", err)
		}
	}
	if mode != "" {
		prefs.SearchMode = generator.Mode(mode)
	}
	if !slices.Contains(generator.AllModes, prefs.SearchMode) {
		log.Fatalf("%v is not a valid search mode", prefs.SearchMode)
	}
	if *maxUnitsPtr != "" {
		prefs.MaxUnits = *maxUnitsPtr
	}
	if *maxGapPtr != "" {
		prefs.MaxGapHours = *maxGapPtr
	}
	if *timeOrderPtr != "" {
		order, err := parseTimeOrder(*timeOrderPtr)
		if err != nil {
			log.Fatal(err)
		}
		prefs.PreferredTimeOfDayOrder = order
	}
	if *minimizeDaysPtr {
		prefs.MinimizeCampusDays = true
	}

	// Extract catalog
	courses, err := generator.CatalogFromJson(catalogFile)
	if err != nil {
		log.Fatalf("cannot parse catalog file: %v", err)
	}
	if *openOnlyPtr {
		courses = generator.OpenSections(courses)
	}
	coursesBySubject := generator.GroupBySubject(courses)

	if prefs.SearchMode == generator.ModeExhaustive && len(coursesBySubject) > generator.SubjectWarningThreshold {
		log.Printf("warning: exhaustive search over %v subjects may take a very long time; consider -mode partial or fast", len(coursesBySubject))
	}

	// Initialize engine
	session := generator.NewSession()
	if *seedPtr != 0 {
		session = generator.NewSeededSession(*seedPtr)
	}
	engine := generators[prefs.SearchMode](session)

	// Generate schedule
	result := engine.Generate(coursesBySubject, prefs)
	if result.Empty() {
		fmt.Println("no feasible schedule was found; consider relaxing the caps or widening the catalog")
		os.Exit(20)
	}

	// Verify schedule soundness
	if !generator.Feasible(result.Schedule, prefs) {
		os.Exit(15)
	}

	// Marshal output into json
	reportJson, err := json.Marshal(buildReport(result, prefs))
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(reportJson))
	} else {
		err := os.WriteFile(outFile, reportJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Subjects: %v\n", len(result.Schedule))
	fmt.Printf("Score: %v\n", result.Score)
}

// buildReport shapes the result for display: the chosen sections plus the
// aggregates a caller would otherwise derive by hand.
func buildReport(result generator.Result, prefs generator.Preferences) map[string]any {
	scheduleJson := lo.Map(result.Schedule, func(course generator.Course, _ int) map[string]any {
		return map[string]any{
			"id":            course.ID,
			"subject":       course.Subject,
			"subjectTitle":  course.Title,
			"section":       course.Section,
			"schedule":      course.Schedule,
			"room":          course.Room,
			"units":         course.Units,
			"creditedUnits": course.CreditedUnits,
		}
	})

	return map[string]any{
		"schedule":            scheduleJson,
		"score":               result.Score,
		"timePreferenceScore": result.TimePrefScore,
		"campusDays":          result.CampusDays,
		"totalUnits":          generator.TotalUnits(result.Schedule),
		"subjects":            len(result.Schedule),
		"searchMode":          prefs.SearchMode,
	}
}

func parseTimeOrder(raw string) ([]generator.TimeOfDay, error) {
	tokens := strings.Split(raw, ",")
	order := make([]generator.TimeOfDay, 0, len(tokens))
	for _, token := range tokens {
		bucket := generator.TimeOfDay(strings.ToLower(strings.TrimSpace(token)))
		if !slices.Contains(generator.AllTimesOfDay, bucket) {
			return nil, fmt.Errorf("%v is not a valid time of day", token)
		}
		order = append(order, bucket)
	}
	return order, nil
}
