package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/MasuRii/CITUCourseBuilder-sub000/internal/generator"
)

// rounds is how many fresh catalogs every shape is measured on; each
// catalog is shared by all strategies so their scores are comparable.
const rounds = 3

type StrategyType int

const (
	exhaustive StrategyType = iota
	partial
	fast
)

var strategyTypes = map[StrategyType]string{
	exhaustive: "exhaustive",
	partial:    "partial",
	fast:       "fast",
}

type CatalogShape struct {
	Subjects           int
	SectionsPerSubject int
}

type BenchmarkResult struct {
	Strategy StrategyType
	Shape    CatalogShape
	Round    int
	Duration int64
	Score    float64
	Coverage float64
	Sound    bool
}

func main() {
	shapes := getShapes()
	strategies := getStrategies()
	results := make([]BenchmarkResult, 0, len(shapes)*rounds*len(strategies))

	for _, shape := range shapes {
		for round := range rounds {
			catalog := generator.GroupBySubject(generator.GenerateCatalog(shape.Subjects, shape.SectionsPerSubject))

			for _, strategy := range strategies {
				// Exhaustive search past the subject threshold would not
				// finish in any reasonable time.
				if strategy == exhaustive && shape.Subjects > generator.SubjectWarningThreshold {
					continue
				}

				fmt.Printf("Benchmarking %vx%v catalog (round %v) with strategy \"%v\"\n",
					shape.Subjects, shape.SectionsPerSubject, round+1, strategyTypes[strategy])

				results = append(results, measure(strategy, shape, round+1, catalog))
			}
		}
	}

	toCsv(results)
}

func getShapes() []CatalogShape {
	return []CatalogShape{
		{Subjects: 4, SectionsPerSubject: 3},
		{Subjects: 6, SectionsPerSubject: 4},
		{Subjects: 8, SectionsPerSubject: 4},
		{Subjects: 10, SectionsPerSubject: 3},
		{Subjects: 12, SectionsPerSubject: 2},
		{Subjects: 16, SectionsPerSubject: 6},
		{Subjects: 24, SectionsPerSubject: 8},
		{Subjects: 48, SectionsPerSubject: 10},
	}
}

func getStrategies() []StrategyType {
	return []StrategyType{exhaustive, partial, fast}
}

func newEngine(strategy StrategyType) generator.Generator {
	switch strategy {
	case exhaustive:
		return generator.NewExhaustiveGenerator()
	case partial:
		return generator.NewPartialGenerator()
	default:
		return generator.NewFastGenerator(generator.NewSession())
	}
}

func measure(strategy StrategyType, shape CatalogShape, round int, coursesBySubject map[string][]generator.Course) BenchmarkResult {
	prefs := generator.Preferences{MaxUnits: "30"}
	engine := newEngine(strategy)

	started := time.Now()
	result := engine.Generate(coursesBySubject, prefs)
	duration := time.Since(started).Milliseconds()

	return BenchmarkResult{
		Strategy: strategy,
		Shape:    shape,
		Round:    round,
		Duration: duration,
		Score:    result.Score,
		Coverage: coverage(result, coursesBySubject),
		Sound:    generator.AssertGenerationResult(coursesBySubject, prefs, result),
	}
}

// coverage is the fraction of offered subjects the schedule managed to
// include.
func coverage(result generator.Result, coursesBySubject map[string][]generator.Course) float64 {
	if len(coursesBySubject) == 0 {
		return 0
	}
	return float64(len(result.Schedule)) / float64(len(coursesBySubject))
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Strategy", "Subjects", "SectionsPerSubject", "Round", "Duration(ms)", "Score", "Coverage", "Sound"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			strategyTypes[result.Strategy],
			fmt.Sprintf("%d", result.Shape.Subjects),
			fmt.Sprintf("%d", result.Shape.SectionsPerSubject),
			fmt.Sprintf("%d", result.Round),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Score),
			fmt.Sprintf("%.2f", result.Coverage),
			fmt.Sprintf("%v", result.Sound),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
