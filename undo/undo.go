// Package undo keeps a linear undo/redo history of buffer edits.
package undo

import (
	"log"

	"goditor/buffer"
)

const DefaultLimit = 100

// Document is what undo and redo are applied to.
type Document interface {
	Apply(buffer.Edit) error
	Revert(buffer.Edit) error
}

// Manager holds edits[:next] as undoable and edits[next:] as redoable.
type Manager struct {
	edits []buffer.Edit
	next  int
	limit int

	log *log.Logger
}

// NewManager returns a history keeping at most limit edits. A limit <= 0
// means DefaultLimit.
func NewManager(log *log.Logger, limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{limit: limit, log: log}
}

// AddEdit records a new edit and drops anything that could be redone.
func (m *Manager) AddEdit(e buffer.Edit) {
	m.edits = append(m.edits[:m.next], e)
	if len(m.edits) > m.limit {
		m.edits = m.edits[len(m.edits)-m.limit:]
	}
	m.next = len(m.edits)
}

func (m *Manager) CanUndo() bool {
	return m.next > 0
}

func (m *Manager) CanRedo() bool {
	return m.next < len(m.edits)
}

// Undo reverts the most recent edit. It reports false and leaves doc
// untouched when there is nothing to undo.
func (m *Manager) Undo(doc Document) (buffer.Edit, bool, error) {
	if !m.CanUndo() {
		return buffer.Edit{}, false, nil
	}
	e := m.edits[m.next-1]
	if err := doc.Revert(e); err != nil {
		m.log.Printf("Undo of edit at %d failed, dropping history: %v", e.Offset, err)
		m.Discard()
		return buffer.Edit{}, false, err
	}
	m.next--
	return e, true, nil
}

// Redo reapplies the most recently undone edit.
func (m *Manager) Redo(doc Document) (buffer.Edit, bool, error) {
	if !m.CanRedo() {
		return buffer.Edit{}, false, nil
	}
	e := m.edits[m.next]
	if err := doc.Apply(e); err != nil {
		m.log.Printf("Redo of edit at %d failed, dropping history: %v", e.Offset, err)
		m.Discard()
		return buffer.Edit{}, false, err
	}
	m.next++
	return e, true, nil
}

// Discard forgets the whole history.
func (m *Manager) Discard() {
	m.edits = nil
	m.next = 0
}
