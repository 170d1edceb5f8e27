package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/input"
	"github.com/povarna/advent-of-code/internal/runner"
	"github.com/povarna/advent-of-code/internal/setup"
	"github.com/povarna/advent-of-code/internal/setup/logger"
)

var (
	configPath string
	part       int
	useSample  bool

	rootCmd = &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 puzzle runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every registered day",
		Args:  cobra.ArbitraryArgs,
		RunE:  runDays,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		RunE:  listDays,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config (default $AOC_CONFIG_PATH or "+config.DefaultPath+")")

	runCmd.Flags().IntVar(&part, "part", 0, "Solve only part 1 or 2")
	runCmd.Flags().BoolVar(&useSample, "sample", false, "Use test.txt instead of input.txt")

	rootCmd.AddCommand(runCmd, listCmd)
}

func wire() (*setup.Dependencies, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l := logger.New(cfg.LogLevel, zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = l

	deps, err := setup.Wire(cfg, &l)
	if err != nil {
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}
	return deps, nil
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, aocerr.New(aocerr.KindInvalidInput, "parse days", "%q is not a day number", a)
		}
		days = append(days, d)
	}
	return days, nil
}

func selectedParts() ([]int, error) {
	switch part {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{part}, nil
	default:
		return nil, aocerr.New(aocerr.KindInvalidInput, "parse flags", "--part must be 1 or 2, got %d", part)
	}
}

func runDays(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		log.Error().Err(err).Msg("Invalid arguments")
		return err
	}
	parts, err := selectedParts()
	if err != nil {
		log.Error().Err(err).Msg("Invalid arguments")
		return err
	}

	deps, err := wire()
	if err != nil {
		log.Error().Err(err).Msg("Failed to start")
		return err
	}

	file := input.InputFile
	if useSample {
		file = input.SampleFile
	}

	results, runErr := deps.Runner.RunAll(days, parts, file)
	if err := runner.Render(cmd.OutOrStdout(), results); err != nil {
		log.Error().Err(err).Msg("Failed to write results")
		return err
	}
	if runErr != nil {
		deps.Logger.Error().
			Err(runErr).
			Str("kind", string(aocerr.KindOf(runErr))).
			Str("run_id", deps.Runner.RunID()).
			Msg("Run failed")
		return runErr
	}

	return nil
}

func listDays(cmd *cobra.Command, _ []string) error {
	deps, err := wire()
	if err != nil {
		log.Error().Err(err).Msg("Failed to start")
		return err
	}
	return runner.RenderList(cmd.OutOrStdout(), deps.Runner)
}
