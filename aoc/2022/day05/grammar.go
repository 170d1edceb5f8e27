package aoc2022day05

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

// ParseError reports where the crate program stopped matching and which
// rules were being tried, innermost first.
type ParseError struct {
	Offset   int
	Line     int
	Column   int
	Expected string
	Trace    []string

	source string
}

func newParseError(in cursor, expected string) *ParseError {
	before := in.src[:in.off]
	line := strings.Count(before, "\n") + 1
	col := in.off - (strings.LastIndexByte(before, '\n') + 1) + 1

	return &ParseError{
		Offset:   in.off,
		Line:     line,
		Column:   col,
		Expected: expected,
		source:   in.src,
	}
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at line %d, column %d (offset %d): expected %s",
		e.Line, e.Column, e.Offset, e.Expected)

	if e.source != "" {
		start := e.Offset - (e.Column - 1)
		end := strings.IndexByte(e.source[start:], '\n')
		if end < 0 {
			end = len(e.source) - start
		}
		fmt.Fprintf(&b, "\n%s\n%s^", e.source[start:start+end], strings.Repeat(" ", e.Column-1))
	}

	for _, rule := range e.Trace {
		fmt.Fprintf(&b, "\n  in %s", rule)
	}
	return b.String()
}

func (e *ParseError) ErrorKind() aocerr.Kind {
	return aocerr.KindParse
}

type cursor struct {
	src string
	off int
}

func (c cursor) rest() string {
	return c.src[c.off:]
}

func (c cursor) advance(n int) cursor {
	c.off += n
	return c
}

// parser consumes a prefix of the cursor. On failure the returned cursor is
// meaningless and callers backtrack to their own start.
type parser[T any] func(in cursor) (T, cursor, *ParseError)

func tag(s string) parser[string] {
	return func(in cursor) (string, cursor, *ParseError) {
		if !strings.HasPrefix(in.rest(), s) {
			return "", in, newParseError(in, strconv.Quote(s))
		}
		return s, in.advance(len(s)), nil
	}
}

func char(c byte) parser[byte] {
	return func(in cursor) (byte, cursor, *ParseError) {
		rest := in.rest()
		if rest == "" || rest[0] != c {
			return 0, in, newParseError(in, strconv.QuoteRune(rune(c)))
		}
		return c, in.advance(1), nil
	}
}

func satisfy(expected string, pred func(rune) bool) parser[rune] {
	return func(in cursor) (rune, cursor, *ParseError) {
		r, size := utf8.DecodeRuneInString(in.rest())
		if size == 0 || !pred(r) {
			return 0, in, newParseError(in, expected)
		}
		return r, in.advance(size), nil
	}
}

// takeWhile never fails, it may consume nothing.
func takeWhile(pred func(byte) bool) parser[string] {
	return func(in cursor) (string, cursor, *ParseError) {
		rest := in.rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return rest[:n], in.advance(n), nil
	}
}

func eof() parser[struct{}] {
	return func(in cursor) (struct{}, cursor, *ParseError) {
		if in.rest() != "" {
			return struct{}{}, in, newParseError(in, "end of input")
		}
		return struct{}{}, in, nil
	}
}

func opt[T any](p parser[T]) parser[T] {
	return func(in cursor) (T, cursor, *ParseError) {
		v, next, err := p(in)
		if err != nil {
			var zero T
			return zero, in, nil
		}
		return v, next, nil
	}
}

// alt returns the first alternative that matches. When all fail it reports
// the failure that got furthest into the input.
func alt[T any](ps ...parser[T]) parser[T] {
	return func(in cursor) (T, cursor, *ParseError) {
		var best *ParseError
		for _, p := range ps {
			v, next, err := p(in)
			if err == nil {
				return v, next, nil
			}
			if best == nil || err.Offset >= best.Offset {
				best = err
			}
		}
		var zero T
		return zero, in, best
	}
}

func mapP[A, B any](p parser[A], f func(A) B) parser[B] {
	return func(in cursor) (B, cursor, *ParseError) {
		v, next, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(v), next, nil
	}
}

// mapRes is mapP for conversions that can fail. f receives the cursor the
// match started at so errors point at it.
func mapRes[A, B any](p parser[A], f func(A, cursor) (B, *ParseError)) parser[B] {
	return func(in cursor) (B, cursor, *ParseError) {
		var zero B
		v, next, err := p(in)
		if err != nil {
			return zero, in, err
		}
		out, err := f(v, in)
		if err != nil {
			return zero, in, err
		}
		return out, next, nil
	}
}

func preceded[A, B any](first parser[A], second parser[B]) parser[B] {
	return func(in cursor) (B, cursor, *ParseError) {
		var zero B
		_, next, err := first(in)
		if err != nil {
			return zero, in, err
		}
		v, next, err := second(next)
		if err != nil {
			return zero, in, err
		}
		return v, next, nil
	}
}

func terminated[A, B any](first parser[A], second parser[B]) parser[A] {
	return func(in cursor) (A, cursor, *ParseError) {
		var zero A
		v, next, err := first(in)
		if err != nil {
			return zero, in, err
		}
		_, next, err = second(next)
		if err != nil {
			return zero, in, err
		}
		return v, next, nil
	}
}

func delimited[A, B, C any](open parser[A], p parser[B], close parser[C]) parser[B] {
	return terminated(preceded(open, p), close)
}

type pair[A, B any] struct {
	First  A
	Second B
}

func separatedPair[A, S, B any](first parser[A], sep parser[S], second parser[B]) parser[pair[A, B]] {
	return func(in cursor) (pair[A, B], cursor, *ParseError) {
		a, next, err := terminated(first, sep)(in)
		if err != nil {
			return pair[A, B]{}, in, err
		}
		b, next, err := second(next)
		if err != nil {
			return pair[A, B]{}, in, err
		}
		return pair[A, B]{First: a, Second: b}, next, nil
	}
}

// sepBy1 matches one or more p separated by sep. A separator not followed by
// p is left unconsumed, unless p got past its first byte before failing: that
// error is returned.
func sepBy1[T, S any](p parser[T], sep parser[S]) parser[[]T] {
	return func(in cursor) ([]T, cursor, *ParseError) {
		first, next, err := p(in)
		if err != nil {
			return nil, in, err
		}
		out := []T{first}
		for {
			_, afterSep, err := sep(next)
			if err != nil {
				return out, next, nil
			}
			v, after, err := p(afterSep)
			if err != nil {
				if err.Offset > afterSep.off {
					return nil, in, err
				}
				return out, next, nil
			}
			out = append(out, v)
			next = after
		}
	}
}

// context names the rule p implements in the error trace.
func context[T any](rule string, p parser[T]) parser[T] {
	return func(in cursor) (T, cursor, *ParseError) {
		v, next, err := p(in)
		if err != nil {
			err.Trace = append(err.Trace, rule)
			return v, in, err
		}
		return v, next, nil
	}
}

type located[T any] struct {
	Value  T
	Offset int
}

func withOffset[T any](p parser[T]) parser[located[T]] {
	return func(in cursor) (located[T], cursor, *ParseError) {
		v, next, err := p(in)
		if err != nil {
			return located[T]{}, in, err
		}
		return located[T]{Value: v, Offset: in.off}, next, nil
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Grammar

// emptySlot marks a "   " position in a diagram row.
const emptySlot rune = 0

var (
	crateP = context("crate", alt(
		delimited(char('['), satisfy("crate letter", unicode.IsLetter), char(']')),
		mapP(tag("   "), func(string) rune { return emptySlot }),
	))

	rowP = context("row", withOffset(sepBy1(crateP, char(' '))))

	footerP = terminated(takeWhile(func(c byte) bool { return c == ' ' || isDigit(c) }), char('\n'))

	diagramP = context("diagram", mapRes(
		terminated(terminated(sepBy1(rowP, char('\n')), char('\n')), footerP),
		transpose,
	))

	numberP = context("number", mapRes(takeWhile(isDigit), func(digits string, at cursor) (int, *ParseError) {
		if digits == "" {
			return 0, newParseError(at, "digit")
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n == 0 {
			return 0, newParseError(at, "positive number")
		}
		return n, nil
	}))

	moveP = context("move", parser[Move](func(in cursor) (Move, cursor, *ParseError) {
		count, next, err := preceded(tag("move "), numberP)(in)
		if err != nil {
			return Move{}, in, err
		}
		from, next, err := preceded(tag(" from "), numberP)(next)
		if err != nil {
			return Move{}, in, err
		}
		to, next, err := preceded(tag(" to "), numberP)(next)
		if err != nil {
			return Move{}, in, err
		}
		return Move{Count: count, From: from, To: to}, next, nil
	}))

	movesP = context("move list", sepBy1(moveP, char('\n')))

	programP = context("program", terminated(
		terminated(separatedPair(diagramP, char('\n'), movesP), opt(char('\n'))),
		eof(),
	))
)

// transpose turns diagram rows, top first, into stacks whose bottom crate
// comes first. The bottom row fixes the number of stacks.
func transpose(rows []located[[]rune], at cursor) (Yard, *ParseError) {
	base := len(rows[len(rows)-1].Value)
	yard := make(Yard, base)

	for i := len(rows) - 1; i >= 0; i-- {
		for col, label := range rows[i].Value {
			if label == emptySlot {
				continue
			}
			if col >= base {
				// each slot is 3 bytes plus a separator
				bad := cursor{src: at.src, off: rows[i].Offset + col*4}
				err := newParseError(bad, fmt.Sprintf("at most %d stacks (line wider than base)", base))
				return nil, err
			}
			yard[col] = append(yard[col], label)
		}
	}

	return yard, nil
}

// Program is a parsed crate diagram with its rearrangement procedure.
type Program struct {
	Yard  Yard
	Moves []Move
}

func ParseProgram(input string) (*Program, error) {
	res, _, err := programP(cursor{src: input})
	if err != nil {
		return nil, err
	}
	return &Program{Yard: res.First, Moves: res.Second}, nil
}

func ParseDiagram(input string) (Yard, error) {
	yard, _, err := diagramP(cursor{src: input})
	if err != nil {
		return nil, err
	}
	return yard, nil
}
