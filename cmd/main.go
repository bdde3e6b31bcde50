package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"scheduling/internal/config"
	"scheduling/internal/model"
	"scheduling/internal/render"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	subjects, err := model.LoadSubjects(cfg.SubjectsDir)
	if err != nil {
		log.Fatalf("cannot load subjects: %v", err)
	}
	log.Infof("loaded %d subject definitions from %s", len(subjects), cfg.SubjectsDir)

	if err := prepareOutputDir(cfg.OutputDir); err != nil {
		log.Fatalf("cannot prepare output directory: %v", err)
	}

	solver := model.NewSolver(
		model.WithGeometry(cfg.Geometry()),
		model.WithScheduleHandler(func(schedule *model.Schedule) {
			if schedule.Incomplete {
				log.Infof("schedule %d created with at least one subject incomplete", schedule.Sequence)
			} else {
				log.Infof("schedule %d successfully completed", schedule.Sequence)
			}
			if err := writeSchedule(cfg, schedule, subjects); err != nil {
				log.Fatalf("cannot write schedule %d: %v", schedule.Sequence, err)
			}
		}),
	)

	result, err := solver.Solve(subjects)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	summarize(result)
}

// prepareOutputDir creates the output directory and clears output of earlier
// runs so schedule numbering starts clean.
func prepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	stale, err := filepath.Glob(filepath.Join(dir, "schedule*"))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

func writeSchedule(cfg config.Config, schedule *model.Schedule, subjects []model.Subject) error {
	base := filepath.Join(cfg.OutputDir, render.Filename(schedule))

	if cfg.Text {
		if err := writeFile(base+".txt", func(file *os.File) error {
			return render.Plain(file, schedule)
		}); err != nil {
			return err
		}
	}
	if cfg.ASCII {
		if err := writeFile(base+"_ascii.txt", func(file *os.File) error {
			return render.ASCII(file, schedule)
		}); err != nil {
			return err
		}
	}
	if cfg.PDF {
		if err := render.PDF(base+".pdf", schedule, subjects); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func summarize(result *model.Result) {
	accepted := color.New(color.FgGreen, color.Bold)
	accepted.Printf("created %d %s", len(result.Schedules), plural(len(result.Schedules), "schedule"))
	fmt.Printf(", of which %d incomplete (plus %d %s, %d combinations evaluated)\n",
		result.Incomplete,
		result.Duplicates,
		plural(result.Duplicates, "duplicate"),
		result.Combinations,
	)
}

func plural(count int, word string) string {
	return lo.Ternary(count == 1, word, word+"s")
}
