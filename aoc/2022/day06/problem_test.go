package aoc2022day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

func TestFindMarker(t *testing.T) {
	tests := []struct {
		input   string
		packet  int
		message int
	}{
		{input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb", packet: 7, message: 19},
		{input: "bvwbjplbgvbhsrlpgdmjqwftvncz", packet: 5, message: 23},
		{input: "nppdvjthqldpwncqszvftbrmjlhg", packet: 6, message: 23},
		{input: "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", packet: 10, message: 29},
		{input: "zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", packet: 11, message: 26},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Part1(tc.input + "\n")
			require.NoError(t, err)
			assert.Equal(t, tc.packet, got)

			got, err = Part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.message, got)
		})
	}
}

func TestFindMarker_NotFound(t *testing.T) {
	tests := []string{"", "abc", "aaaaaaaa", "abcabcabc"}

	for _, input := range tests {
		_, err := Part1(input)
		require.Error(t, err, input)
		assert.Equal(t, aocerr.KindNotFound, aocerr.KindOf(err))
	}
}

func TestFindMarker_WholeInput(t *testing.T) {
	got, err := FindMarker("abcd", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}
