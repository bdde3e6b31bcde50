package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"scheduling/internal/config"
	"scheduling/internal/model"
	"scheduling/internal/render"
)

func main() {
	// Define arguments
	configPtr := flag.String("config", "", "Path to a configuration file; if empty, ./scheduling.* is used when present")
	subjectsPtr := flag.String("subjects", "", "Directory holding one *.txt definition per subject")
	jsonPtr := flag.String("json", "", "JSON file holding all subject definitions; overrides -subjects")
	verifyPtr := flag.Bool("verify", false, "Re-check every accepted schedule against the subjects after solving")
	summaryPtr := flag.Bool("summary", false, "Print only the aggregate counts, writing no output files")
	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	if *subjectsPtr != "" {
		cfg.SubjectsDir = *subjectsPtr
	}

	// Extract input
	var subjects []model.Subject
	if *jsonPtr != "" {
		subjects, err = model.SubjectsFromJSON(*jsonPtr)
	} else {
		subjects, err = model.LoadSubjects(cfg.SubjectsDir)
	}
	if err != nil {
		log.Fatalf("cannot load subjects: %v", err)
	}

	// Solve
	solver := model.NewSolver(model.WithGeometry(cfg.Geometry()))
	result, err := solver.Solve(subjects)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	}

	if *verifyPtr {
		for _, schedule := range result.Schedules {
			if !solver.Verify(schedule, subjects) {
				log.Fatalf("verification failed for schedule %d", schedule.Sequence)
			}
		}
	}

	// Write output
	if !*summaryPtr {
		for _, schedule := range result.Schedules {
			fmt.Printf("--- %s ---\n", render.Filename(schedule))
			if err := render.ASCII(os.Stdout, schedule); err != nil {
				log.Fatalf("cannot render schedule %d: %v", schedule.Sequence, err)
			}
		}
	}

	fmt.Printf("accepted: %d, incomplete: %d, duplicates: %d, combinations: %d\n",
		len(result.Schedules), result.Incomplete, result.Duplicates, result.Combinations)
}
