package buffer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
)

// ErrBadLocation is returned for offsets outside [0, Len()].
var ErrBadLocation = errors.New("bad location")

// Edit is one reversible change to a Buffer. Removed is the text that was
// at Offset before the change, Inserted the text that replaced it.
type Edit struct {
	Offset   int
	Removed  []rune
	Inserted []rune
}

// Inverse returns the edit that undoes e.
func (e Edit) Inverse() Edit {
	return Edit{Offset: e.Offset, Removed: e.Inserted, Inserted: e.Removed}
}

// End is the offset just past the inserted text.
func (e Edit) End() int {
	return e.Offset + len(e.Inserted)
}

type EditListener func(Edit)

// Buffer holds the text of one document. Lines are separated by '\n'.
// It is owned by a single goroutine.
type Buffer struct {
	runes     []rune
	listeners []EditListener
	modified  bool

	log *log.Logger
}

func NewBuffer(log *log.Logger) *Buffer {
	return &Buffer{log: log}
}

func NewBufferString(log *log.Logger, s string) *Buffer {
	return &Buffer{runes: []rune(s), log: log}
}

// OnEdit registers a listener that receives one Edit per mutating call.
func (b *Buffer) OnEdit(l EditListener) {
	b.listeners = append(b.listeners, l)
}

func (b *Buffer) Len() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

// Reader returns a reader over a snapshot of the content.
func (b *Buffer) Reader() io.Reader {
	return strings.NewReader(b.String())
}

func (b *Buffer) Modified() bool {
	return b.modified
}

func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

func (b *Buffer) RuneAt(offset int) (rune, error) {
	if offset < 0 || offset >= len(b.runes) {
		return 0, b.badLocation(offset)
	}
	return b.runes[offset], nil
}

func (b *Buffer) Slice(lo, hi int) (string, error) {
	if err := b.checkRange(lo, hi); err != nil {
		return "", err
	}
	return string(b.runes[lo:hi]), nil
}

func (b *Buffer) Insert(offset int, s string) error {
	return b.Replace(offset, 0, s)
}

func (b *Buffer) Delete(offset, n int) error {
	return b.Replace(offset, n, "")
}

// Replace swaps the n runes at offset for s and notifies listeners with a
// single Edit. Replacing nothing with nothing is not an edit.
func (b *Buffer) Replace(offset, n int, s string) error {
	if n < 0 {
		return b.badLocation(offset + n)
	}
	if err := b.checkRange(offset, offset+n); err != nil {
		return err
	}
	e := Edit{
		Offset:   offset,
		Removed:  slices.Clone(b.runes[offset : offset+n]),
		Inserted: []rune(s),
	}
	if len(e.Removed) == 0 && len(e.Inserted) == 0 {
		return nil
	}
	b.splice(e)
	for _, l := range b.listeners {
		l(e)
	}
	return nil
}

// SetText replaces the whole content as one edit.
func (b *Buffer) SetText(s string) error {
	return b.Replace(0, b.Len(), s)
}

// Apply performs e without notifying listeners.
func (b *Buffer) Apply(e Edit) error {
	if err := b.checkEdit(e); err != nil {
		return err
	}
	b.splice(e)
	return nil
}

// Revert undoes e without notifying listeners.
func (b *Buffer) Revert(e Edit) error {
	return b.Apply(e.Inverse())
}

// Reset replaces the content without producing an edit and clears the
// modified flag. Used when a document is loaded.
func (b *Buffer) Reset(s string) {
	b.runes = []rune(s)
	b.modified = false
}

func (b *Buffer) checkEdit(e Edit) error {
	if err := b.checkRange(e.Offset, e.Offset+len(e.Removed)); err != nil {
		return err
	}
	if !slices.Equal(b.runes[e.Offset:e.Offset+len(e.Removed)], e.Removed) {
		return fmt.Errorf("%w: edit at %d does not match buffer content", ErrBadLocation, e.Offset)
	}
	return nil
}

func (b *Buffer) splice(e Edit) {
	b.runes = slices.Replace(b.runes, e.Offset, e.Offset+len(e.Removed), e.Inserted...)
	b.modified = true
}

func (b *Buffer) checkRange(lo, hi int) error {
	if lo < 0 || lo > len(b.runes) {
		return b.badLocation(lo)
	}
	if hi < lo || hi > len(b.runes) {
		return b.badLocation(hi)
	}
	return nil
}

func (b *Buffer) badLocation(offset int) error {
	return fmt.Errorf("%w: offset %d not in [0, %d]", ErrBadLocation, offset, len(b.runes))
}
