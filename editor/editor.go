// Package editor implements the document side of the text editor: the
// buffer with its undo history, the caret, the file operations and the
// handling of every menu command. The window it runs in is reached only
// through Dialogs and Clipboard.
package editor

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"goditor/buffer"
	"goditor/commands"
	"goditor/config"
	"goditor/position"
	"goditor/undo"
)

const (
	FontStep    = 2
	MinFontSize = 2
)

const (
	fileNotFoundMessage       = "File not found!"
	somethingWentWrongMessage = "Something went wrong!"
)

type Editor struct {
	log       *log.Logger
	cfg       *config.EditorConfig
	dialogs   Dialogs
	clipboard Clipboard
	commands  *commands.Commands
	now       func() time.Time

	buf     *buffer.Buffer
	history *undo.Manager
	tracker *position.Tracker

	path string
	dir  string

	caret  int
	anchor int
	goal   int

	font      Font
	statusBar bool
	closed    bool
}

func New(log *log.Logger, cfg *config.EditorConfig, dialogs Dialogs, clipboard Clipboard) *Editor {
	e := &Editor{
		log:       log,
		cfg:       cfg,
		dialogs:   dialogs,
		clipboard: clipboard,
		now:       time.Now,
		buf:       buffer.NewBuffer(log),
		history:   undo.NewManager(log, cfg.UndoLimit),
		goal:      -1,
		font:      Font{Family: cfg.FontFamily, Size: cfg.FontSize},
		statusBar: cfg.StatusBar,
	}
	e.buf.OnEdit(e.history.AddEdit)
	e.tracker = position.NewTracker(e.buf, e.ReportError)
	e.commands = commands.NewCommands(log, e.Execute)
	return e
}

func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

func (e *Editor) History() *undo.Manager {
	return e.history
}

func (e *Editor) Commands() *commands.Commands {
	return e.commands
}

func (e *Editor) Config() *config.EditorConfig {
	return e.cfg
}

func (e *Editor) Path() string {
	return e.path
}

func (e *Editor) Font() Font {
	return e.font
}

func (e *Editor) StatusBarVisible() bool {
	return e.statusBar
}

func (e *Editor) Closed() bool {
	return e.closed
}

func (e *Editor) Position() *position.Tracker {
	return e.tracker
}

// StatusText is the row and column display.
func (e *Editor) StatusText() string {
	return e.tracker.String()
}

// Title names the document, marked with '*' when it has unsaved changes.
func (e *Editor) Title() string {
	name := "Untitled"
	if e.path != "" {
		name = filepath.Base(e.path)
	}
	if e.buf.Modified() {
		name += "*"
	}
	return name
}

// SetConfig applies a reloaded configuration. Document state such as the
// current font and status bar visibility is left alone.
func (e *Editor) SetConfig(cfg *config.EditorConfig) {
	e.cfg = cfg
}

// Execute is the single dispatch point for every command.
func (e *Editor) Execute(cmd commands.Command) {
	e.log.Printf("Executing command %v", cmd)
	switch cmd {
	case commands.New:
		e.NewDocument()
	case commands.Open:
		e.Open()
	case commands.Save:
		e.Save()
	case commands.SaveAs:
		e.SaveAs()
	case commands.Close:
		e.Close()
	case commands.Undo:
		e.Undo()
	case commands.Redo:
		e.Redo()
	case commands.Cut:
		e.Cut()
	case commands.Copy:
		e.Copy()
	case commands.Paste:
		e.Paste()
	case commands.Delete:
		e.DeleteSelection()
	case commands.SelectAll:
		e.SelectAll()
	case commands.SetFont:
		e.SetFont()
	case commands.InsertDateTime:
		e.InsertDateTime()
	case commands.ZoomIn:
		e.Zoom(FontStep)
	case commands.ZoomOut:
		e.Zoom(-FontStep)
	case commands.ToggleStatusBar:
		e.statusBar = !e.statusBar
	case commands.Help:
		e.Help()
	case commands.RunCommand:
		e.RunCommand()
	default:
		e.log.Printf("Ignoring unknown command %d", cmd)
	}
}

// ReportError turns err into a modal notice. It is the end of every error
// path: nothing is retried and nothing is propagated further.
func (e *Editor) ReportError(err error) {
	e.log.Printf("Error: %+v", err)
	if errors.Is(err, buffer.ErrFileNotFound) {
		e.dialogs.Notice("Error", fileNotFoundMessage)
		return
	}
	e.dialogs.Notice("Error", somethingWentWrongMessage)
}

// NewDocument offers to save and then clears the text. With the default
// configuration Cancel behaves like No; newAbortsOnCancel makes it abort.
func (e *Editor) NewDocument() {
	choice := e.dialogs.Confirm("Save file?", "Do you want to save the current file?",
		[]string{"Yes", "No", "Cancel"}, 2)
	switch choice {
	case 0:
		e.SaveAs()
	case 2, -1:
		if e.cfg.NewAbortsOnCancel {
			e.log.Print("New document cancelled")
			return
		}
	}

	if err := e.buf.SetText(""); err != nil {
		e.ReportError(err)
		return
	}
	e.buf.SetModified(false)
	e.path = ""
	e.setCaret(0, false)
}

// Open asks for a file and loads it. On failure the buffer is unchanged.
func (e *Editor) Open() {
	path, ok := e.dialogs.OpenFile(e.dir)
	if !ok {
		return
	}
	if err := e.OpenPath(path); err != nil {
		e.ReportError(err)
	}
}

// OpenPath replaces the content with the file at path and associates the
// path with the document. The undo history starts over.
func (e *Editor) OpenPath(path string) error {
	content, err := buffer.Read(path)
	if err != nil {
		return err
	}
	e.buf.Reset(content)
	e.history.Discard()
	e.path = path
	e.dir = filepath.Dir(path)
	e.setCaret(0, false)
	e.log.Printf("Opened %v (%d characters)", path, e.buf.Len())
	return nil
}

// Save writes to the associated path, asking for one if there is none.
func (e *Editor) Save() {
	if e.path == "" {
		e.SaveAs()
		return
	}
	if err := e.writeTo(e.path); err != nil {
		e.ReportError(err)
	}
}

// SaveAs asks for a destination, writes there and keeps the path for
// later saves. Cancelling does nothing.
func (e *Editor) SaveAs() {
	dir, name, ok := e.dialogs.SaveFile(e.dir)
	if !ok || strings.TrimSpace(name) == "" {
		return
	}
	if base := filepath.Base(name); base != name {
		e.log.Printf("Save As: name %q has a directory part, saving as %q in %v", name, base, dir)
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := e.writeTo(path); err != nil {
		e.ReportError(err)
		return
	}
	e.path = path
	e.dir = dir
}

func (e *Editor) writeTo(path string) error {
	if err := buffer.Write(path, e.buf.Reader()); err != nil {
		return err
	}
	e.buf.SetModified(false)
	e.log.Printf("Wrote %d characters to %v", e.buf.Len(), path)
	return nil
}

// Close asks for confirmation before the window goes away.
func (e *Editor) Close() {
	title := e.cfg.Title
	if title == "" {
		title = "the editor"
	}
	choice := e.dialogs.Confirm("Confirm Exit", fmt.Sprintf("Are you sure you want to close %s?", title),
		[]string{"Yes", "Cancel"}, 1)
	if choice == 0 {
		e.closed = true
	}
}

func (e *Editor) Undo() {
	edit, ok, err := e.history.Undo(e.buf)
	if err != nil {
		e.ReportError(err)
		return
	}
	if ok {
		e.setCaret(edit.Offset+len(edit.Removed), false)
	}
}

func (e *Editor) Redo() {
	edit, ok, err := e.history.Redo(e.buf)
	if err != nil {
		e.ReportError(err)
		return
	}
	if ok {
		e.setCaret(edit.End(), false)
	}
}

func (e *Editor) SetFont() {
	font, ok := e.dialogs.ChooseFont(e.font, e.cfg.FontFamilies)
	if !ok {
		return
	}
	e.font = font
	e.log.Printf("Selected Font : %v", font)
}

// Zoom changes the font size by delta, never below MinFontSize.
func (e *Editor) Zoom(delta int) {
	e.font.Size = max(MinFontSize, e.font.Size+delta)
}

// InsertDateTime appends the current short date and time to the text.
func (e *Editor) InsertDateTime() {
	stamp := e.now().Format(e.cfg.DateTimeLayout)
	if err := e.buf.Insert(e.buf.Len(), stamp); err != nil {
		e.ReportError(err)
	}
}

func (e *Editor) Help() {
	var b strings.Builder
	for _, menu := range commands.MenuBar() {
		fmt.Fprintf(&b, "%s\n", menu.Title)
		for _, item := range menu.Items {
			fmt.Fprintf(&b, "  %-20s %s\n", item.Label, item.ShortcutLabel())
		}
	}
	if e.cfg.HelpURL != "" {
		fmt.Fprintf(&b, "\nMore help: %s", e.cfg.HelpURL)
	}
	e.dialogs.Notice("Help", strings.TrimRight(b.String(), "\n"))
}

// RunCommand asks for a command name and executes it.
func (e *Editor) RunCommand() {
	name, ok := e.dialogs.Prompt("Command", "Command: ", "")
	if !ok {
		return
	}
	if cmd, _ := e.commands.Lookup(name); cmd == commands.RunCommand || !e.commands.Exec(name) {
		e.dialogs.Notice("Command", fmt.Sprintf("Unknown command %q", strings.TrimSpace(name)))
	}
}
