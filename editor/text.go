package editor

// Caret returns the caret offset.
func (e *Editor) Caret() int {
	return e.caret
}

// Selection returns the selected range [lo, hi). ok is false when
// nothing is selected.
func (e *Editor) Selection() (lo, hi int, ok bool) {
	lo, hi = min(e.caret, e.anchor), max(e.caret, e.anchor)
	return lo, hi, lo != hi
}

func (e *Editor) SelectedText() string {
	lo, hi, ok := e.Selection()
	if !ok {
		return ""
	}
	text, err := e.buf.Slice(lo, hi)
	if err != nil {
		e.ReportError(err)
		return ""
	}
	return text
}

// SetCaret moves the caret to offset, clamped to the text. With extend
// the selection anchor stays where it is.
func (e *Editor) SetCaret(offset int, extend bool) {
	e.goal = -1
	e.setCaret(offset, extend)
}

func (e *Editor) setCaret(offset int, extend bool) {
	e.caret = max(0, min(offset, e.buf.Len()))
	if !extend {
		e.anchor = e.caret
	}
	e.tracker.CaretUpdate(e.caret)
}

// InsertText replaces the selection, or inserts at the caret, with text.
func (e *Editor) InsertText(text string) {
	lo, hi, _ := e.Selection()
	if err := e.buf.Replace(lo, hi-lo, text); err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(lo+len([]rune(text)), false)
}

// Backspace deletes the selection or the character before the caret.
func (e *Editor) Backspace() {
	if _, _, ok := e.Selection(); ok {
		e.DeleteSelection()
		return
	}
	if e.caret == 0 {
		return
	}
	if err := e.buf.Delete(e.caret-1, 1); err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(e.caret-1, false)
}

// DeleteForward deletes the selection or the character after the caret.
func (e *Editor) DeleteForward() {
	if _, _, ok := e.Selection(); ok {
		e.DeleteSelection()
		return
	}
	if e.caret == e.buf.Len() {
		return
	}
	if err := e.buf.Delete(e.caret, 1); err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(e.caret, false)
}

// DeleteSelection removes the selected text as one edit.
func (e *Editor) DeleteSelection() {
	lo, hi, ok := e.Selection()
	if !ok {
		return
	}
	if err := e.buf.Delete(lo, hi-lo); err != nil {
		e.ReportError(err)
		return
	}
	e.SetCaret(lo, false)
}

func (e *Editor) SelectAll() {
	e.anchor = 0
	e.setCaret(e.buf.Len(), true)
}

func (e *Editor) Copy() {
	text := e.SelectedText()
	if text == "" {
		return
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.ReportError(err)
	}
}

func (e *Editor) Cut() {
	text := e.SelectedText()
	if text == "" {
		return
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.ReportError(err)
		return
	}
	e.DeleteSelection()
}

func (e *Editor) Paste() {
	text, err := e.clipboard.ReadAll()
	if err != nil {
		e.ReportError(err)
		return
	}
	if text == "" {
		return
	}
	e.InsertText(text)
}
