package aoc2022day07

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
	"github.com/povarna/advent-of-code/utils"
)

const (
	DefaultTotalDiskSpace = 70000000
	DefaultRequiredSpace  = 30000000
	DefaultSmallDirLimit  = 100000
)

type CommandKind int

const (
	CdRoot CommandKind = iota
	CdUp
	CdDown
	Ls
)

// Command is one `$` line of the transcript. Ls carries the summed size of
// the files in its listing.
type Command struct {
	Kind CommandKind
	Name string
	Size uint64
}

func ParseTranscript(input string) ([]Command, error) {
	const op = "parse transcript"

	var commands []Command
	inListing := false

	for i, line := range utils.Lines(input) {
		line = strings.TrimRight(line, " \r")
		lineNo := i + 1

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "$ cd "):
			inListing = false
			target := strings.TrimSpace(strings.TrimPrefix(line, "$ cd "))
			switch target {
			case "":
				return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: cd without a target", lineNo)
			case "/":
				commands = append(commands, Command{Kind: CdRoot})
			case "..":
				commands = append(commands, Command{Kind: CdUp})
			default:
				commands = append(commands, Command{Kind: CdDown, Name: target})
			}

		case line == "$ ls":
			inListing = true
			commands = append(commands, Command{Kind: Ls})

		case strings.HasPrefix(line, "$"):
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: unknown command %q", lineNo, line)

		case !inListing:
			return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: listing entry outside of ls", lineNo)

		case strings.HasPrefix(line, "dir "):
			// subdirectories are discovered through cd

		default:
			// File listing: <size> <name>
			sizeStr, name, ok := strings.Cut(line, " ")
			if !ok || name == "" {
				return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: malformed listing %q", lineNo, line)
			}
			size, err := utils.ToUint(sizeStr)
			if err != nil {
				return nil, aocerr.New(aocerr.KindInvalidInput, op, "line %d: bad file size %q", lineNo, sizeStr)
			}
			commands[len(commands)-1].Size += size
		}
	}

	return commands, nil
}

func BuildTree(input string) (*Tree, error) {
	commands, err := ParseTranscript(input)
	if err != nil {
		return nil, err
	}

	tree := NewTree()
	for _, cmd := range commands {
		tree.HandleCommand(cmd)
	}
	return tree, nil
}

// Limits are the disk figures the two parts are evaluated against.
type Limits struct {
	TotalDiskSpace uint64
	RequiredSpace  uint64
	SmallDirLimit  uint64
}

func DefaultLimits() Limits {
	return Limits{
		TotalDiskSpace: DefaultTotalDiskSpace,
		RequiredSpace:  DefaultRequiredSpace,
		SmallDirLimit:  DefaultSmallDirLimit,
	}
}

func part1(input string, limits Limits) (uint64, error) {
	tree, err := BuildTree(input)
	if err != nil {
		return 0, err
	}
	return tree.SumSmallDirs(limits.SmallDirLimit), nil
}

func part2(input string, limits Limits) (uint64, error) {
	tree, err := BuildTree(input)
	if err != nil {
		return 0, err
	}
	return tree.SmallestToFree(limits.TotalDiskSpace, limits.RequiredSpace)
}

func Part1(input string) (uint64, error) {
	return part1(input, DefaultLimits())
}

func Part2(input string) (uint64, error) {
	return part2(input, DefaultLimits())
}

// Solver plugs the device filesystem puzzle into the runner.
type Solver struct {
	Limits Limits
}

func NewSolver(limits Limits) *Solver {
	return &Solver{Limits: limits}
}

func (s *Solver) Day() int { return 7 }

func (s *Solver) Title() string { return "No Space Left On Device" }

func (s *Solver) Part1(input string) (string, error) {
	n, err := part1(input, s.Limits)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}

func (s *Solver) Part2(input string) (string, error) {
	n, err := part2(input, s.Limits)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}
