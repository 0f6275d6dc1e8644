package editor

import (
	"log"

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// MemoryClipboard keeps the text in process.
type MemoryClipboard struct {
	text string
}

func (m *MemoryClipboard) ReadAll() (string, error) {
	return m.text, nil
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

// SystemClipboard uses the desktop clipboard and falls back to an in
// process one when no clipboard utility is available, as on a bare
// console or over ssh.
type SystemClipboard struct {
	fallback MemoryClipboard
	log      *log.Logger
}

func NewSystemClipboard(log *log.Logger) *SystemClipboard {
	if clipboard.Unsupported {
		log.Print("No system clipboard available, using an internal one")
	}
	return &SystemClipboard{log: log}
}

func (s *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return s.fallback.ReadAll()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		s.log.Printf("Reading system clipboard failed, using internal one: %v", err)
		return s.fallback.ReadAll()
	}
	return text, nil
}

func (s *SystemClipboard) WriteAll(text string) error {
	s.fallback.WriteAll(text)
	if clipboard.Unsupported {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		s.log.Printf("Writing system clipboard failed, kept text internally: %v", err)
	}
	return nil
}
