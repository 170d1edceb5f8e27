package aoc2022day02

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/utils"
)

type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Score is the points a shape is worth on its own.
func (s Shape) Score() int {
	return int(s) + 1
}

// Beats returns the shape s wins against.
func (s Shape) Beats() Shape {
	return (s + 2) % 3
}

// LosesTo returns the shape that wins against s.
func (s Shape) LosesTo() Shape {
	return (s + 1) % 3
}

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) Score() int {
	return int(o) * 3
}

func play(opponent, me Shape) Outcome {
	switch {
	case me == opponent:
		return Draw
	case me.Beats() == opponent:
		return Win
	default:
		return Lose
	}
}

func choose(opponent Shape, want Outcome) Shape {
	switch want {
	case Win:
		return opponent.LosesTo()
	case Lose:
		return opponent.Beats()
	default:
		return opponent
	}
}

// round is one strategy guide line, both columns as 0..2.
type round struct {
	left  int
	right int
}

func parseRounds(input string) ([]round, error) {
	const op = "parse strategy guide"

	var rounds []round
	for i, line := range utils.Lines(input) {
		line = strings.TrimRight(line, " \r")
		if line == "" {
			continue
		}
		if len(line) != 3 || line[1] != ' ' {
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: expected \"<A-C> <X-Z>\", got %q", i+1, line)
		}
		l, r := line[0], line[2]
		if l < 'A' || l > 'C' {
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: unknown opponent shape %q", i+1, l)
		}
		if r < 'X' || r > 'Z' {
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: unknown response %q", i+1, r)
		}
		rounds = append(rounds, round{left: int(l - 'A'), right: int(r - 'X')})
	}
	return rounds, nil
}

func score(input string, pick func(opponent Shape, column int) Shape) (int, error) {
	rounds, err := parseRounds(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, r := range rounds {
		opponent := Shape(r.left)
		me := pick(opponent, r.right)
		total += me.Score() + play(opponent, me).Score()
	}
	return total, nil
}

// Part1 reads the second column as the shape to play.
func Part1(input string) (int, error) {
	return score(input, func(_ Shape, column int) Shape {
		return Shape(column)
	})
}

// Part2 reads the second column as the outcome the round must end in.
func Part2(input string) (int, error) {
	return score(input, func(opponent Shape, column int) Shape {
		return choose(opponent, Outcome(column))
	})
}

type Solver struct{}

func (Solver) Day() int { return 2 }

func (Solver) Title() string { return "Rock Paper Scissors" }

func (Solver) Part1(input string) (string, error) {
	n, err := Part1(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (Solver) Part2(input string) (string, error) {
	n, err := Part2(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
