package aoc2022day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

const sample = `30373
25512
65332
33549
35390
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}

func TestScenicScore_BestTree(t *testing.T) {
	grid, err := ParseGrid(sample)
	require.NoError(t, err)

	Scan(grid, NewScenicProcessor)

	// the height-5 tree in the middle of the fourth row
	assert.Equal(t, uint64(8), grid[3][2].ScenicScore)
	// the height-5 tree in the middle of the second row
	assert.Equal(t, uint64(4), grid[1][2].ScenicScore)
	// edges look at nothing in at least one direction
	assert.Equal(t, uint64(0), grid[0][0].ScenicScore)
}

func TestVisibility_BorderAlwaysVisible(t *testing.T) {
	inputs := []string{
		sample,
		"99999\n99999\n99999",
		"1",
		"0000\n0000",
		"123\n456\n789\n000",
	}

	for _, input := range inputs {
		grid, err := ParseGrid(input)
		require.NoError(t, err)

		Scan(grid, NewVisibilityProcessor)

		rows, cols := grid.Rows(), grid.Cols()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if i == 0 || j == 0 || i == rows-1 || j == cols-1 {
					assert.Truef(t, grid[i][j].Visible, "border cell (%d,%d) of %q not visible", i, j, input)
				}
			}
		}
	}
}

func TestVisibility_RaisingHeightIsMonotonic(t *testing.T) {
	base, err := ParseGrid(sample)
	require.NoError(t, err)
	Scan(base, NewVisibilityProcessor)

	for i := range base {
		for j := range base[i] {
			raised, err := ParseGrid(sample)
			require.NoError(t, err)
			if raised[i][j].Height < 9 {
				raised[i][j].Height++
			}
			Scan(raised, NewVisibilityProcessor)

			if base[i][j].Visible {
				assert.Truef(t, raised[i][j].Visible, "raising (%d,%d) hid it", i, j)
			}
		}
	}
}

func TestScan_RectangularGrid(t *testing.T) {
	grid, err := ParseGrid("12321\n11111")
	require.NoError(t, err)

	Scan(grid, NewVisibilityProcessor)
	assert.Equal(t, 10, grid.CountVisible())

	grid, err = ParseGrid("1\n5\n2\n9\n0")
	require.NoError(t, err)
	Scan(grid, NewScenicProcessor)
	for _, row := range grid {
		assert.Equal(t, uint64(0), row[0].ScenicScore)
	}
}

func TestVisibilityProcessor_ResetForgetsRay(t *testing.T) {
	p := NewVisibilityProcessor()
	tall := Cell{Height: 9}
	short := Cell{Height: 1}

	p.Process(&tall)
	p.Process(&short)
	assert.False(t, short.Visible)

	p.Reset()
	p.Process(&short)
	assert.True(t, short.Visible)
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  aocerr.Kind
	}{
		{
			name:  "non digit",
			input: "123\n1a3",
			kind:  aocerr.KindInvalidInput,
		},
		{
			name:  "ragged rows",
			input: "123\n12",
			kind:  aocerr.KindStructural,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.kind, aocerr.KindOf(err))
		})
	}
}

func TestPart2_EmptyInput(t *testing.T) {
	_, err := Part2("  \n ")
	require.Error(t, err)
	assert.True(t, aocerr.Is(err, aocerr.KindEmptyInput))

	n, err := Part1("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
