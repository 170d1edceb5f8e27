package aoc2022day01

import (
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/utils"
)

func part1(input string) (int, error) {
	acc, err := getCalories(input)
	if err != nil {
		return 0, err
	}

	return slices.Max(acc), nil
}

// part2 sums the calories carried by the three best-stocked elves.
func part2(input string) (int, error) {
	acc, err := getCalories(input)
	if err != nil {
		return 0, err
	}
	if len(acc) < 3 {
		return 0, aocerr.New(aocerr.KindEmptyInput, "top three", "only %d elves in input", len(acc))
	}

	slices.SortFunc(acc, func(a int, b int) int {
		return b - a
	})

	return acc[0] + acc[1] + acc[2], nil
}

func getCalories(input string) ([]int, error) {
	input = strings.TrimRight(input, "\n")
	if strings.TrimSpace(input) == "" {
		return nil, aocerr.New(aocerr.KindEmptyInput, "count calories", "no elves in input")
	}

	elfCalories := strings.Split(input, "\n\n")
	acc := make([]int, 0, len(elfCalories))

	for i, group := range elfCalories {
		total := 0
		for _, calorie := range utils.Lines(group) {
			c, err := utils.ToInt(calorie)
			if err != nil {
				return nil, aocerr.Wrap(aocerr.KindInvalidInput, "elf "+strconv.Itoa(i+1), err)
			}
			total += c
		}
		acc = append(acc, total)
	}
	return acc, nil
}

func Part1(input string) (int, error) {
	return part1(input)
}

func Part2(input string) (int, error) {
	return part2(input)
}

type Solver struct{}

func (Solver) Day() int { return 1 }

func (Solver) Title() string { return "Calorie Counting" }

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
