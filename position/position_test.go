package position

import (
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"goditor/buffer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

func countRow(s string, offset int) int {
	return 1 + strings.Count(s[:offset], "\n")
}

func countColumn(s string, offset int) int {
	return offset - (strings.LastIndex(s[:offset], "\n") + 1) + 1
}

func TestRowAndColumn(t *testing.T) {
	b := buffer.NewBufferString(discard, "ab\ncd\nef")

	for _, tc := range []struct {
		offset, row, col int
	}{
		{4, 2, 2}, // before 'd'
		{5, 2, 3}, // end of "cd"
		{3, 2, 1},
		{8, 3, 3},
	} {
		row, err := RowOf(b, tc.offset)
		require.NoError(t, err)
		col, err := ColumnOf(b, tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.row, row, "row at %d", tc.offset)
		assert.Equal(t, tc.col, col, "column at %d", tc.offset)
	}
}

func TestLeadingEmptyLines(t *testing.T) {
	for _, tc := range []struct {
		text        string
		offset, row int
	}{
		{"\nx", 1, 2},
		{"\nx", 2, 2},
		{"\n\n", 1, 2},
		{"\n\n", 2, 3},
	} {
		row, err := RowOf(buffer.NewBufferString(discard, tc.text), tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.row, row, "row of %q at %d", tc.text, tc.offset)
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := buffer.NewBuffer(discard)

	row, err := RowOf(b, 0)
	require.NoError(t, err)
	col, err := ColumnOf(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestEveryOffset(t *testing.T) {
	texts := []string{
		"ab\ncd\nef",
		"\n\n\n",
		"single line",
		"trailing\n",
		"\nleading",
		"a\n\nb\n\n\nc",
	}
	for _, text := range texts {
		b := buffer.NewBufferString(discard, text)
		for offset := 0; offset <= len(text); offset++ {
			row, err := RowOf(b, offset)
			require.NoError(t, err)
			assert.Equal(t, countRow(text, offset), row, "row of %q at %d", text, offset)

			col, err := ColumnOf(b, offset)
			require.NoError(t, err)
			assert.Equal(t, countColumn(text, offset), col, "column of %q at %d", text, offset)
		}
	}
}

func TestInvalidOffset(t *testing.T) {
	b := buffer.NewBufferString(discard, "abc")

	_, err := RowOf(b, 10)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 10, perr.Offset)
	assert.ErrorIs(t, err, buffer.ErrBadLocation)

	col, err := ColumnOf(b, 10)
	assert.Equal(t, InvalidColumn, col)
	assert.ErrorAs(t, err, &perr)

	_, err = RowOf(b, -1)
	assert.ErrorAs(t, err, &perr)
}

func TestTracker(t *testing.T) {
	b := buffer.NewBufferString(discard, "one\ntwo\nthree")
	var reported []error
	tr := NewTracker(b, func(err error) { reported = append(reported, err) })

	assert.Equal(t, "Row: 0  Column: 0", tr.String())

	tr.CaretUpdate(9)
	assert.Equal(t, "Row: 3  Column: 2", tr.String())
	assert.Empty(t, reported)

	tr.CaretUpdate(100)
	assert.Equal(t, InvalidColumn, tr.Column)
	assert.NotEmpty(t, reported)
}
