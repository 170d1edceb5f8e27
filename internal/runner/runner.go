package runner

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/internal/input"
)

// Solver is one puzzle day. Answers are rendered as strings so every day
// can be driven the same way.
type Solver interface {
	Day() int
	Title() string
	Part1(input string) (string, error)
	Part2(input string) (string, error)
}

type Result struct {
	Day      int
	Title    string
	Part     int
	Answer   string
	Duration time.Duration
}

type Runner struct {
	source  input.Source
	solvers map[int]Solver
	logger  zerolog.Logger
	runID   string
}

func NewRunner(source input.Source, logger zerolog.Logger, solvers ...Solver) (*Runner, error) {
	r := &Runner{
		source:  source,
		solvers: make(map[int]Solver, len(solvers)),
		runID:   uuid.NewString(),
	}
	r.logger = logger.With().Str("run_id", r.runID).Logger()

	for _, s := range solvers {
		if _, dup := r.solvers[s.Day()]; dup {
			return nil, fmt.Errorf("failed to register solver: day %02d registered twice", s.Day())
		}
		r.solvers[s.Day()] = s
	}

	return r, nil
}

func (r *Runner) RunID() string {
	return r.runID
}

// Days lists the registered days in ascending order.
func (r *Runner) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

func (r *Runner) Solver(day int) (Solver, bool) {
	s, ok := r.solvers[day]
	return s, ok
}

// Run solves the requested parts of one day against the named input file.
// Results of parts solved before a failure are returned with the error.
func (r *Runner) Run(day int, parts []int, file string) ([]Result, error) {
	solver, ok := r.solvers[day]
	if !ok {
		return nil, aocerr.New(aocerr.KindNotFound, "run", "no solver for day %02d", day)
	}
	for _, p := range parts {
		if p != 1 && p != 2 {
			return nil, aocerr.New(aocerr.KindInvalidInput, "run", "part %d does not exist", p)
		}
	}

	text, err := r.source.Read(day, file)
	if err != nil {
		return nil, fmt.Errorf("day %02d: %w", day, err)
	}

	log := r.logger.With().Int("day", day).Str("file", file).Logger()
	log.Debug().Int("bytes", len(text)).Msg("input loaded")

	results := make([]Result, 0, len(parts))
	for _, p := range parts {
		start := time.Now()
		answer, err := solve(solver, p, text)
		elapsed := time.Since(start)

		if err != nil {
			log.Error().
				Err(err).
				Int("part", p).
				Str("kind", string(aocerr.KindOf(err))).
				Dur("duration", elapsed).
				Msg("part failed")
			return results, fmt.Errorf("day %02d part %d: %w", day, p, err)
		}

		log.Info().
			Int("part", p).
			Str("answer", answer).
			Dur("duration", elapsed).
			Msg("part solved")

		results = append(results, Result{
			Day:      day,
			Title:    solver.Title(),
			Part:     p,
			Answer:   answer,
			Duration: elapsed,
		})
	}

	return results, nil
}

// RunAll runs every listed day in order, or every registered day when days
// is empty. It stops at the first failing day.
func (r *Runner) RunAll(days []int, parts []int, file string) ([]Result, error) {
	if len(days) == 0 {
		days = r.Days()
	}

	var all []Result
	for _, d := range days {
		results, err := r.Run(d, parts, file)
		all = append(all, results...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func solve(s Solver, part int, text string) (string, error) {
	if part == 1 {
		return s.Part1(text)
	}
	return s.Part2(text)
}
