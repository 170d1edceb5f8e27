package aoc2022day03

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/utils"
)

// itemSet is a bitmask over priorities 1..52.
type itemSet uint64

func priority(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, true
	default:
		return 0, false
	}
}

func itemsOf(s string) (itemSet, error) {
	var set itemSet
	for i := 0; i < len(s); i++ {
		p, ok := priority(s[i])
		if !ok {
			return 0, aocerr.New(aocerr.KindInvalidInput, "read items", "unexpected item %q", s[i])
		}
		set |= 1 << p
	}
	return set, nil
}

// single returns the priority of the only item in set.
func (set itemSet) single() (int, bool) {
	if set == 0 || set&(set-1) != 0 {
		return 0, false
	}
	p := 0
	for set > 1 {
		set >>= 1
		p++
	}
	return p, true
}

func rucksacks(input string) []string {
	var out []string
	for _, line := range utils.Lines(input) {
		line = strings.TrimRight(line, " \r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// common returns the priority of the one item present in every group member.
func common(group []string) (int, error) {
	all := ^itemSet(0)
	for _, g := range group {
		set, err := itemsOf(g)
		if err != nil {
			return 0, err
		}
		all &= set
	}

	p, ok := all.single()
	if !ok {
		return 0, aocerr.New(aocerr.KindInvalidInput, "find common item", "no single shared item in %q", group)
	}
	return p, nil
}

func part1(input string) (int, error) {
	total := 0
	for i, sack := range rucksacks(input) {
		op := "rucksack " + strconv.Itoa(i+1)
		if len(sack)%2 != 0 {
			return 0, aocerr.New(aocerr.KindInvalidInput, op, "odd item count %d", len(sack))
		}

		half := len(sack) / 2
		p, err := common([]string{sack[:half], sack[half:]})
		if err != nil {
			return 0, aocerr.Wrap(aocerr.KindInvalidInput, op, err)
		}
		total += p
	}
	return total, nil
}

func part2(input string) (int, error) {
	sacks := rucksacks(input)
	if extra := len(sacks) % 3; extra != 0 {
		return 0, aocerr.New(aocerr.KindStructural, "group elves", "extra %d line(s) after the last group of three", extra)
	}

	total := 0
	for i := 0; i < len(sacks); i += 3 {
		p, err := common(sacks[i : i+3])
		if err != nil {
			return 0, aocerr.Wrap(aocerr.KindInvalidInput, "group "+strconv.Itoa(i/3+1), err)
		}
		total += p
	}
	return total, nil
}

func Part1(input string) (int, error) {
	return part1(input)
}

func Part2(input string) (int, error) {
	return part2(input)
}

type Solver struct{}

func (Solver) Day() int { return 3 }

func (Solver) Title() string { return "Rucksack Reorganization" }

func (Solver) Part1(input string) (string, error) {
	n, err := part1(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (Solver) Part2(input string) (string, error) {
	n, err := part2(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
