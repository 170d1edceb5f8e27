package aoc2022day05

import (
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

// CraneModel selects how a multi-crate move lands on the target stack.
type CraneModel int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved block.
	CrateMover9000 CraneModel = iota
	// CrateMover9001 lifts the whole block at once, keeping its order.
	CrateMover9001
)

func (m CraneModel) String() string {
	switch m {
	case CrateMover9000:
		return "CrateMover 9000"
	case CrateMover9001:
		return "CrateMover 9001"
	default:
		return "unknown crane"
	}
}

// Stack holds crate labels bottom first.
type Stack []rune

// Yard is the row of stacks, indexed from 0 here and from 1 in moves.
type Yard []Stack

type Move struct {
	Count int
	From  int
	To    int
}

func (y Yard) Clone() Yard {
	out := make(Yard, len(y))
	for i, s := range y {
		out[i] = append(Stack(nil), s...)
	}
	return out
}

// Apply performs one move. The yard is left untouched when the move is
// rejected.
func (y Yard) Apply(m Move, model CraneModel) error {
	const op = "apply move"

	if m.From < 1 || m.From > len(y) {
		return aocerr.New(aocerr.KindStructural, op, "no stack %d to move from (have %d)", m.From, len(y))
	}
	if m.To < 1 || m.To > len(y) {
		return aocerr.New(aocerr.KindStructural, op, "no stack %d to move to (have %d)", m.To, len(y))
	}
	if m.From == m.To {
		return nil
	}

	source := y[m.From-1]
	if m.Count > len(source) {
		return aocerr.New(aocerr.KindStructural, op,
			"can't take %d crates from stack %d holding %d", m.Count, m.From, len(source))
	}

	split := len(source) - m.Count
	lifted := source[split:]
	dest := y[m.To-1]

	switch model {
	case CrateMover9000:
		for i := len(lifted) - 1; i >= 0; i-- {
			dest = append(dest, lifted[i])
		}
	default:
		dest = append(dest, lifted...)
	}

	y[m.To-1] = dest
	y[m.From-1] = source[:split]
	return nil
}

// Tops reads the top crate of every stack, a space for an empty one.
func (y Yard) Tops() string {
	var b strings.Builder
	for _, s := range y {
		if len(s) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(s[len(s)-1])
	}
	return b.String()
}

// Run applies every move in order and returns the resulting tops.
func (p *Program) Run(model CraneModel) (string, error) {
	yard := p.Yard.Clone()
	for i, m := range p.Moves {
		if err := yard.Apply(m, model); err != nil {
			return "", aocerr.Wrap(aocerr.KindStructural, "move "+strconv.Itoa(i+1), err)
		}
	}
	return yard.Tops(), nil
}

func rearrange(input string, model CraneModel) (string, error) {
	program, err := ParseProgram(input)
	if err != nil {
		return "", err
	}
	return program.Run(model)
}

func Part1(input string) (string, error) {
	return rearrange(input, CrateMover9000)
}

func Part2(input string) (string, error) {
	return rearrange(input, CrateMover9001)
}

// Solver plugs the supply stacks puzzle into the runner.
type Solver struct{}

func (Solver) Day() int { return 5 }

func (Solver) Title() string { return "Supply Stacks" }

func (Solver) Part1(input string) (string, error) { return Part1(input) }

func (Solver) Part2(input string) (string, error) { return Part2(input) }
