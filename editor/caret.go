package editor

// Caret movement. Up and down remember the column they started from in
// goal so that passing a short line does not lose it.

func (e *Editor) MoveLeft(extend bool) {
	if lo, _, ok := e.Selection(); ok && !extend {
		e.SetCaret(lo, false)
		return
	}
	e.SetCaret(e.caret-1, extend)
}

func (e *Editor) MoveRight(extend bool) {
	if _, hi, ok := e.Selection(); ok && !extend {
		e.SetCaret(hi, false)
		return
	}
	e.SetCaret(e.caret+1, extend)
}

func (e *Editor) MoveLineStart(extend bool) {
	start, err := e.buf.LineStart(e.caret)
	if err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(start, extend)
}

func (e *Editor) MoveLineEnd(extend bool) {
	end, err := e.buf.LineEnd(e.caret)
	if err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(end, extend)
}

func (e *Editor) MoveDocumentStart(extend bool) {
	e.SetCaret(0, extend)
}

func (e *Editor) MoveDocumentEnd(extend bool) {
	e.SetCaret(e.buf.Len(), extend)
}

func (e *Editor) MoveUp(extend bool) {
	e.MoveLines(-1, extend)
}

func (e *Editor) MoveDown(extend bool) {
	e.MoveLines(1, extend)
}

// MoveLines moves the caret n lines down (up for negative n), stopping at
// the first and last line.
func (e *Editor) MoveLines(n int, extend bool) {
	start, err := e.buf.LineStart(e.caret)
	if err != nil {
		e.ReportError(err)
		return
	}
	goal := e.goal
	if goal < 0 {
		goal = e.caret - start
	}

	for ; n < 0 && start > 0; n++ {
		start, _ = e.buf.LineStart(start - 1)
	}
	for ; n > 0; n-- {
		end, _ := e.buf.LineEnd(start)
		if end == e.buf.Len() {
			break
		}
		start = end + 1
	}

	end, err := e.buf.LineEnd(start)
	if err != nil {
		e.ReportError(err)
		return
	}
	e.setCaret(start+min(goal, end-start), extend)
	e.goal = goal
}
