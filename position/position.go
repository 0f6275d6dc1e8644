// Package position maps caret offsets to the 1-based row and column shown
// in the status bar.
package position

import "fmt"

// Lines resolves the start of the line containing an offset.
type Lines interface {
	LineStart(offset int) (int, error)
}

// Error reports an offset whose line start could not be resolved.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("position %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidColumn is the column reported when the offset cannot be resolved.
const InvalidColumn = -1

// RowOf walks backwards from offset one line start at a time and counts
// the lines crossed. Offset 0 is row 1 without a scan; any other offset
// starts counting at 0 and stops after the line starting at 0, so the
// result is always 1 + the number of line breaks before offset.
//
// On failure the row counted so far is returned with the error.
func RowOf(lines Lines, offset int) (int, error) {
	if offset < 0 {
		return 0, &Error{Offset: offset, Err: fmt.Errorf("negative offset")}
	}

	row := 0
	if offset == 0 {
		row = 1
	}
	for offset > 0 {
		start, err := lines.LineStart(offset)
		if err != nil {
			return row, &Error{Offset: offset, Err: err}
		}
		row++
		if start == 0 {
			break
		}
		offset = start - 1
	}
	return row, nil
}

// ColumnOf is offset - lineStart(offset) + 1.
func ColumnOf(lines Lines, offset int) (int, error) {
	start, err := lines.LineStart(offset)
	if err != nil {
		return InvalidColumn, &Error{Offset: offset, Err: err}
	}
	return offset - start + 1, nil
}
