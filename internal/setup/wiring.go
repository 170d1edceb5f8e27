package setup

import (
	"fmt"

	"github.com/rs/zerolog"

	aoc2022day01 "github.com/povarna/advent-of-code/aoc/2022/day01"
	aoc2022day02 "github.com/povarna/advent-of-code/aoc/2022/day02"
	aoc2022day03 "github.com/povarna/advent-of-code/aoc/2022/day03"
	aoc2022day04 "github.com/povarna/advent-of-code/aoc/2022/day04"
	aoc2022day05 "github.com/povarna/advent-of-code/aoc/2022/day05"
	aoc2022day06 "github.com/povarna/advent-of-code/aoc/2022/day06"
	aoc2022day07 "github.com/povarna/advent-of-code/aoc/2022/day07"
	aoc2022day08 "github.com/povarna/advent-of-code/aoc/2022/day08"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/runner"
)

type Dependencies struct {
	Runner *runner.Runner
	Source input.Source
	Logger *zerolog.Logger
}

// Solvers returns every puzzle of the configured year.
func Solvers(cfg *config.Config) ([]runner.Solver, error) {
	if cfg.Year != 2022 {
		return nil, fmt.Errorf("no puzzles for year %d", cfg.Year)
	}

	return []runner.Solver{
		aoc2022day01.Solver{},
		aoc2022day02.Solver{},
		aoc2022day03.Solver{},
		aoc2022day04.Solver{},
		aoc2022day05.Solver{},
		aoc2022day06.Solver{},
		aoc2022day07.NewSolver(aoc2022day07.Limits{
			TotalDiskSpace: cfg.Disk.TotalSpace,
			RequiredSpace:  cfg.Disk.RequiredFree,
			SmallDirLimit:  cfg.Disk.SmallDirLimit,
		}),
		aoc2022day08.Solver{},
	}, nil
}

func Wire(cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	source := input.NewOSSource(cfg.InputDir, cfg.Lenient)

	solvers, err := Solvers(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load solvers: %w", err)
	}

	r, err := runner.NewRunner(source, *logger, solvers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &Dependencies{
		Runner: r,
		Source: source,
		Logger: logger,
	}, nil
}
