package aoc2022day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/utils"
)

// Range is an inclusive section assignment.
type Range struct {
	Lo, Hi int
}

func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

func (r Range) Overlaps(o Range) bool {
	return !(r.Hi < o.Lo || r.Lo > o.Hi)
}

type Pair struct {
	First, Second Range
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("missing '-' in %q", s)
	}
	l, err := utils.ToInt(lo)
	if err != nil {
		return Range{}, err
	}
	h, err := utils.ToInt(hi)
	if err != nil {
		return Range{}, err
	}
	if l > h {
		return Range{}, fmt.Errorf("range %q is reversed", s)
	}
	return Range{Lo: l, Hi: h}, nil
}

func ParsePairs(input string) ([]Pair, error) {
	var pairs []Pair
	for i, line := range utils.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		op := "line " + strconv.Itoa(i+1)

		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "expected two assignments, got %q", line)
		}
		first, err := parseRange(left)
		if err != nil {
			return nil, aocerr.Wrap(aocerr.KindInvalidInput, op, err)
		}
		second, err := parseRange(right)
		if err != nil {
			return nil, aocerr.Wrap(aocerr.KindInvalidInput, op, err)
		}
		pairs = append(pairs, Pair{First: first, Second: second})
	}
	return pairs, nil
}

func count(input string, match func(Pair) bool) (int, error) {
	pairs, err := ParsePairs(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, p := range pairs {
		if match(p) {
			total += 1
		}
	}
	return total, nil
}

// Part1 counts pairs where one assignment fully contains the other.
func Part1(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p.First.Contains(p.Second) || p.Second.Contains(p.First)
	})
}

// Part2 counts pairs whose assignments overlap at all.
func Part2(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p.First.Overlaps(p.Second)
	})
}

type Solver struct{}

func (Solver) Day() int { return 4 }

func (Solver) Title() string { return "Camp Cleanup" }

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
