package input

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povarna/advent-of-code/internal/aocerr"
)

func newFS(t *testing.T, files map[string]string) *FileSource {
	t.Helper()
	fs := memfs.New()
	for p, content := range files {
		require.NoError(t, util.WriteFile(fs, p, []byte(content), 0o644))
	}
	return NewFileSource(fs, false)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "08/input.txt", Path(8, InputFile))
	assert.Equal(t, "25/test.txt", Path(25, SampleFile))
}

func TestFileSource_Read(t *testing.T) {
	src := newFS(t, map[string]string{
		"05/input.txt": "    [D]    \r\n 1 \r\n\r\n\n",
		"05/test.txt":  "sample\n",
	})

	got, err := src.Read(5, InputFile)
	require.NoError(t, err)
	assert.Equal(t, "    [D]    \r\n 1 \r\n\r\n\n", got, "strict mode returns bytes untouched")

	got, err = src.Read(5, SampleFile)
	require.NoError(t, err)
	assert.Equal(t, "sample\n", got)

	src.lenient = true
	got, err = src.Read(5, InputFile)
	require.NoError(t, err)
	assert.Equal(t, "    [D]    \n 1\n", got)
}

func TestFileSource_ReadErrors(t *testing.T) {
	src := newFS(t, map[string]string{"01/input.txt": "1\n"})

	tests := []struct {
		name string
		day  int
		file string
		kind aocerr.Kind
	}{
		{name: "missing day", day: 2, file: InputFile, kind: aocerr.KindNotFound},
		{name: "missing sample", day: 1, file: SampleFile, kind: aocerr.KindNotFound},
		{name: "day zero", day: 0, file: InputFile, kind: aocerr.KindInvalidInput},
		{name: "day 26", day: 26, file: InputFile, kind: aocerr.KindInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := src.Read(tc.day, tc.file)
			require.Error(t, err)
			assert.Equal(t, tc.kind, aocerr.KindOf(err))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already clean", input: "abc\n", want: "abc\n"},
		{name: "no trailing newline", input: "abc", want: "abc\n"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "trailing blank lines", input: "a\n\n\n  \n", want: "a\n"},
		{name: "leading indentation kept", input: "    [D]\n", want: "    [D]\n"},
		{name: "blank", input: " \n\n", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}
