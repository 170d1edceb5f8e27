package aoc2022day06

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

const (
	PacketMarkerSize  = 4
	MessageMarkerSize = 14
)

// FindMarker returns the number of characters processed when the first run
// of size distinct characters ends.
func FindMarker(input string, size int) (int, error) {
	input = strings.TrimSpace(input)

	// counts of each byte inside the current window
	var seen [256]int
	dupes := 0

	for i := 0; i < len(input); i++ {
		if seen[input[i]]++; seen[input[i]] == 2 {
			dupes++
		}
		if i >= size {
			out := input[i-size]
			if seen[out]--; seen[out] == 1 {
				dupes--
			}
		}
		if i >= size-1 && dupes == 0 {
			return i + 1, nil
		}
	}

	return 0, aocerr.New(aocerr.KindNotFound, "find marker", "no %d distinct characters in a row", size)
}

func Part1(input string) (int, error) {
	return FindMarker(input, PacketMarkerSize)
}

func Part2(input string) (int, error) {
	return FindMarker(input, MessageMarkerSize)
}

type Solver struct{}

func (Solver) Day() int { return 6 }

func (Solver) Title() string { return "Tuning Trouble" }

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
