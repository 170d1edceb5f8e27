package aoc2022day08

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

// Cell is one tree of the forest grid.
type Cell struct {
	Height      uint8
	Visible     bool
	ScenicScore uint64
}

// Grid is a rectangular forest, row-major.
type Grid [][]Cell

func ParseGrid(input string) (Grid, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Grid{}, nil
	}

	lines := strings.Split(input, "\n")
	grid := make(Grid, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i > 0 && len(line) != len(grid[0]) {
			return nil, aocerr.New(aocerr.KindStructural, "parse grid",
				"row %d has %d cells, want %d", i+1, len(line), len(grid[0]))
		}

		row := make([]Cell, len(line))
		for j := 0; j < len(line); j++ {
			c := line[j]
			if c < '0' || c > '9' {
				return nil, aocerr.New(aocerr.KindInvalidInput, "parse grid",
					"line %d column %d: %q is not a digit", i+1, j+1, c)
			}
			row[j] = Cell{Height: c - '0', ScenicScore: 1}
		}
		grid = append(grid, row)
	}

	return grid, nil
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// CountVisible returns the number of cells seen from at least one edge.
func (g Grid) CountVisible() int {
	total := 0
	for _, row := range g {
		for _, c := range row {
			if c.Visible {
				total++
			}
		}
	}
	return total
}

// MaxScenicScore returns the best scenic score of the grid.
func (g Grid) MaxScenicScore() (uint64, error) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return 0, aocerr.New(aocerr.KindEmptyInput, "max scenic score", "grid has no cells")
	}

	best := uint64(0)
	for _, row := range g {
		for _, c := range row {
			best = max(best, c.ScenicScore)
		}
	}
	return best, nil
}

func Part1(input string) (int, error) {
	grid, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}

	Scan(grid, NewVisibilityProcessor)
	return grid.CountVisible(), nil
}

func Part2(input string) (uint64, error) {
	grid, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}

	Scan(grid, NewScenicProcessor)
	return grid.MaxScenicScore()
}

// Solver plugs the treetop house puzzle into the runner.
type Solver struct{}

func (Solver) Day() int { return 8 }

func (Solver) Title() string { return "Treetop Tree House" }

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
	return strconv.FormatUint(n, 10), nil
}
