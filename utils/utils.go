package utils

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

// ToInt parses a decimal integer, classifying failures as invalid input.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, aocerr.Wrap(aocerr.KindInvalidInput, "to int", err)
	}

	return n, nil
}

// ToUint parses a non-negative decimal integer.
func ToUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, aocerr.Wrap(aocerr.KindInvalidInput, "to uint", err)
	}

	return n, nil
}

// Lines splits input into lines, dropping a single trailing newline.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
