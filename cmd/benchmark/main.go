package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"scheduling/internal/model"
)

const resultsFile = "benchmark.csv"

type ScenarioMetadata struct {
	Name         string
	RequiredOnes int
	FillAlls     int
	SlotsEach    int
}

type BenchmarkResult struct {
	Scenario     ScenarioMetadata
	Duration     time.Duration
	Combinations uint64
	Accepted     int
	Duplicates   int
}

func main() {
	scenarios := getScenarios()
	results := make([]BenchmarkResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		fmt.Printf("Benchmarking scenario %q\n", scenario.Name)

		subjects := buildSubjects(scenario)
		solver := model.NewSolver()

		started := time.Now()
		result, err := solver.Solve(subjects)
		if err != nil {
			log.Fatalf("scenario %q: %v", scenario.Name, err)
		}

		results = append(results, BenchmarkResult{
			Scenario:     scenario,
			Duration:     time.Since(started),
			Combinations: result.Combinations,
			Accepted:     len(result.Schedules),
			Duplicates:   result.Duplicates,
		})
	}

	toCsv(results)
}

func getScenarios() []ScenarioMetadata {
	scenarios := make([]ScenarioMetadata, 0)
	for _, requiredOnes := range []int{1, 2, 4, 6} {
		for _, fillAlls := range []int{0, 1, 2} {
			for _, slotsEach := range []int{2, 3, 4} {
				scenarios = append(scenarios, ScenarioMetadata{
					Name:         fmt.Sprintf("r%v_f%v_s%v", requiredOnes, fillAlls, slotsEach),
					RequiredOnes: requiredOnes,
					FillAlls:     fillAlls,
					SlotsEach:    slotsEach,
				})
			}
		}
	}
	return scenarios
}

// buildSubjects lays the scenario's subjects out deterministically: slots
// march across the week hour by hour, so neighbouring subjects contend for
// some slots but not all of them.
func buildSubjects(scenario ScenarioMetadata) []model.Subject {
	total := scenario.RequiredOnes + scenario.FillAlls
	subjects := make([]model.Subject, 0, total)

	for i := range total {
		kind := model.RequiredOne
		if i >= scenario.RequiredOnes {
			kind = model.FillAll
		}

		slots := make([]model.TimeSlot, 0, scenario.SlotsEach)
		for j := range scenario.SlotsEach {
			day := (i + j) % model.DefaultGeometry.Days
			start := (model.DefaultGeometry.StartHour + (i+2*j)%10) * 60
			slots = append(slots, model.TimeSlot{Day: day, Start: start, End: start + 60})
		}

		subjects = append(subjects, model.Subject{
			Name:  fmt.Sprintf("subject_%d", i),
			Kind:  kind,
			Slots: slots,
			Color: model.DefaultColor,
		})
	}
	return subjects
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Fatalf("cannot create results file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"scenario", "required_ones", "fill_alls", "slots_each", "duration_ms", "combinations", "accepted", "duplicates"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}

	rows := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			result.Scenario.Name,
			strconv.Itoa(result.Scenario.RequiredOnes),
			strconv.Itoa(result.Scenario.FillAlls),
			strconv.Itoa(result.Scenario.SlotsEach),
			strconv.FormatInt(result.Duration.Milliseconds(), 10),
			strconv.FormatUint(result.Combinations, 10),
			strconv.Itoa(result.Accepted),
			strconv.Itoa(result.Duplicates),
		}
	})
	if err := writer.WriteAll(rows); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}
