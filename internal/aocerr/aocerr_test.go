package aocerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: KindUnknown,
		},
		{
			name: "direct",
			err:  New(KindCapacity, "smallest", "used %d > total %d", 5, 4),
			want: KindCapacity,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("day 07 part 2: %w", New(KindEmptyInput, "max", "no cells")),
			want: KindEmptyInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	err := Wrap(KindInvalidInput, "parse", errors.New("bad digit"))
	assert.Equal(t, "parse: INVALID_INPUT: bad digit", err.Error())

	err = New(KindNotFound, "", "no marker")
	assert.Equal(t, "NOT_FOUND: no marker", err.Error())

	assert.Nil(t, Wrap(KindParse, "x", nil))
	assert.True(t, Is(Wrap(KindParse, "x", errors.New("y")), KindParse))
}
