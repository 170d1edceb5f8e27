// Package input loads puzzle inputs from the configured input directory.
package input

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

const (
	InputFile  = "input.txt"
	SampleFile = "test.txt"
)

// Source hands out the raw text of one puzzle input.
type Source interface {
	Read(day int, name string) (string, error)
}

// FileSource reads <NN>/<name> below the root of a billy filesystem.
type FileSource struct {
	fs      billy.Filesystem
	lenient bool
}

func NewFileSource(fs billy.Filesystem, lenient bool) *FileSource {
	return &FileSource{fs: fs, lenient: lenient}
}

// NewOSSource roots a FileSource at dir on the local disk.
func NewOSSource(dir string, lenient bool) *FileSource {
	return NewFileSource(osfs.New(dir), lenient)
}

// Path returns the location of a day's file relative to the source root.
func Path(day int, name string) string {
	return path.Join(fmt.Sprintf("%02d", day), name)
}

func (s *FileSource) Read(day int, name string) (string, error) {
	const op = "read input"

	if day < 1 || day > 25 {
		return "", aocerr.New(aocerr.KindInvalidInput, op, "day %d outside 1..25", day)
	}

	p := Path(day, name)
	data, err := util.ReadFile(s.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", aocerr.New(aocerr.KindNotFound, op, "no %s for day %02d at %s", name, day, p)
		}
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}

	text := string(data)
	if s.lenient {
		text = Normalize(text)
	}
	return text, nil
}

// Normalize converts CRLF line endings and collapses trailing whitespace to a
// single newline. Leading whitespace and whitespace inside lines are kept:
// crate diagrams depend on them.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.TrimRightFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ' ' || r == '\t'
	})
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}
