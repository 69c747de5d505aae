package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/generator"
	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/schedule"
)

var dayNames = map[schedule.DayCode]string{
	schedule.Monday:    "Monday",
	schedule.Tuesday:   "Tuesday",
	schedule.Wednesday: "Wednesday",
	schedule.Thursday:  "Thursday",
	schedule.Friday:    "Friday",
	schedule.Saturday:  "Saturday",
	schedule.Sunday:    "Sunday",
}

func main() {
	courses := generator.GenerateCatalog(8, 4)
	coursesBySubject := generator.GroupBySubject(generator.OpenSections(courses))

	prefs := generator.Preferences{
		MaxUnits:                "24",
		PreferredTimeOfDayOrder: []generator.TimeOfDay{generator.Morning, generator.Afternoon, generator.Evening},
		MinimizeCampusDays:      true,
	}

	// engine := generator.NewExhaustiveGenerator()
	// engine := generator.NewGreedyGenerator()
	// engine := generator.NewFastGenerator(generator.NewSession())
	engine := generator.NewPartialGenerator()

	result := engine.Generate(coursesBySubject, prefs)
	if result.Empty() {
		fmt.Println("No feasible schedule")
		return
	}

	type entry struct {
		start   string
		end     string
		subject string
		section string
		room    string
	}
	perDay := map[schedule.DayCode][]entry{}

	for _, course := range result.Schedule {
		parsed := course.Parsed()
		if parsed == nil || parsed.IsTBA() {
			fmt.Printf("Unscheduled: %v (%v)\n", course.Subject, course.Section)
			continue
		}
		for _, slot := range parsed.Slots() {
			room := slot.Room
			if room == "" {
				room = course.Room
			}
			for _, day := range slot.Days {
				perDay[day] = append(perDay[day], entry{
					start:   slot.StartTime,
					end:     slot.EndTime,
					subject: course.Subject,
					section: course.Section,
					room:    room,
				})
			}
		}
	}

	for _, day := range schedule.AllDays {
		entries := perDay[day]
		if len(entries) == 0 {
			continue
		}
		slices.SortFunc(entries, func(a, b entry) int {
			return strings.Compare(a.start, b.start)
		})

		fmt.Printf("%v:\n", dayNames[day])
		for _, meeting := range entries {
			timeRange := meeting.start + "-" + meeting.end
			if meeting.start == "" {
				timeRange = "TBA"
			}
			fmt.Printf("  %v %v (%v) at %v\n", timeRange, meeting.subject, meeting.section, meeting.room)
		}
	}

	if !generator.Feasible(result.Schedule, prefs) {
		log.Fatal("Verification failed")
	}

	fmt.Printf("Score: %v, Units: %v, Campus days: %v\n", result.Score, generator.TotalUnits(result.Schedule), result.CampusDays)
	fmt.Println("Well done!")
}
