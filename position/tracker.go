package position

import "fmt"

// Tracker keeps the row and column of the caret up to date. Failures are
// passed to report and leave the sentinel column on display.
type Tracker struct {
	lines  Lines
	report func(error)

	Row, Column int
}

func NewTracker(lines Lines, report func(error)) *Tracker {
	return &Tracker{lines: lines, report: report}
}

// CaretUpdate is called after every caret movement.
func (t *Tracker) CaretUpdate(offset int) {
	row, err := RowOf(t.lines, offset)
	if err != nil {
		t.fail(err)
	}
	col, err := ColumnOf(t.lines, offset)
	if err != nil {
		t.fail(err)
	}
	t.Row, t.Column = row, col
}

func (t *Tracker) fail(err error) {
	if t.report != nil {
		t.report(err)
	}
}

func (t *Tracker) String() string {
	return fmt.Sprintf("Row: %d  Column: %d", t.Row, t.Column)
}
