package buffer

// LineStart returns the offset of the first character of the line that
// contains offset.
func (b *Buffer) LineStart(offset int) (int, error) {
	if offset < 0 || offset > len(b.runes) {
		return 0, b.badLocation(offset)
	}
	for i := offset - 1; i >= 0; i-- {
		if b.runes[i] == '\n' {
			return i + 1, nil
		}
	}
	return 0, nil
}

// LineEnd returns the offset of the line break ending the line that
// contains offset, or Len() on the last line.
func (b *Buffer) LineEnd(offset int) (int, error) {
	if offset < 0 || offset > len(b.runes) {
		return 0, b.badLocation(offset)
	}
	for i := offset; i < len(b.runes); i++ {
		if b.runes[i] == '\n' {
			return i, nil
		}
	}
	return len(b.runes), nil
}

// LineCount is the number of line breaks plus one.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.runes {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineBounds returns [start, end) of the 0-based line, end excluding the
// line break.
func (b *Buffer) LineBounds(line int) (start, end int, err error) {
	if line < 0 {
		return 0, 0, b.badLocation(-1)
	}
	cur := 0
	for i, r := range b.runes {
		if cur == line && r == '\n' {
			return start, i, nil
		}
		if r == '\n' {
			cur++
			start = i + 1
		}
	}
	if cur != line {
		return 0, 0, b.badLocation(len(b.runes) + 1)
	}
	return start, len(b.runes), nil
}

// Line returns the runes of the 0-based line without its line break.
func (b *Buffer) Line(line int) ([]rune, error) {
	start, end, err := b.LineBounds(line)
	if err != nil {
		return nil, err
	}
	return b.runes[start:end], nil
}

// OffsetOf converts a 0-based line and rune column to an offset. The
// column is clamped to the line length.
func (b *Buffer) OffsetOf(line, col int) (int, error) {
	start, end, err := b.LineBounds(line)
	if err != nil {
		return 0, err
	}
	return start + max(0, min(col, end-start)), nil
}
