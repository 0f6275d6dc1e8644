package editor

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"goditor/commands"
	"goditor/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

// fakeDialogs answers every dialog from its fields and records notices.
type fakeDialogs struct {
	openPath  string
	openOK    bool
	saveDir   string
	saveName  string
	saveOK    bool
	font      Font
	fontOK    bool
	confirm   int
	prompt    string
	promptOK  bool
	notices   []string
	confirmed []string
	saveCalls int
}

func (f *fakeDialogs) OpenFile(string) (string, bool) { return f.openPath, f.openOK }

func (f *fakeDialogs) SaveFile(string) (string, string, bool) {
	f.saveCalls++
	return f.saveDir, f.saveName, f.saveOK
}

func (f *fakeDialogs) ChooseFont(Font, []string) (Font, bool) { return f.font, f.fontOK }

func (f *fakeDialogs) Confirm(title, _ string, _ []string, _ int) int {
	f.confirmed = append(f.confirmed, title)
	return f.confirm
}

func (f *fakeDialogs) Prompt(string, string, string) (string, bool) { return f.prompt, f.promptOK }

func (f *fakeDialogs) Notice(_, message string) { f.notices = append(f.notices, message) }

func newEditor(t *testing.T, text string) (*Editor, *fakeDialogs) {
	t.Helper()
	d := &fakeDialogs{confirm: -1}
	e := New(discard, config.Default(), d, &MemoryClipboard{})
	e.InsertText(text)
	e.History().Discard()
	e.Buffer().SetModified(false)
	return e, d
}

func TestStatusText(t *testing.T) {
	e, _ := newEditor(t, "ab\ncd\nef")
	e.SetCaret(4, false)
	assert.Equal(t, "Row: 2  Column: 2", e.StatusText())
	e.SetCaret(5, false)
	assert.Equal(t, "Row: 2  Column: 3", e.StatusText())

	e.SetCaret(0, false)
	assert.Equal(t, "Row: 1  Column: 1", e.StatusText())

	e.MoveDocumentEnd(false)
	assert.Equal(t, "Row: 3  Column: 3", e.StatusText())
}

func TestStatusTextBeforeFirstMove(t *testing.T) {
	e := New(discard, config.Default(), &fakeDialogs{}, &MemoryClipboard{})
	assert.Equal(t, "Row: 0  Column: 0", e.StatusText())
	assert.False(t, e.StatusBarVisible())
	e.Execute(commands.ToggleStatusBar)
	assert.True(t, e.StatusBarVisible())
}

func TestInsertUndoRedo(t *testing.T) {
	e, _ := newEditor(t, "hello")
	e.SetCaret(5, false)
	e.InsertText(" world")
	assert.Equal(t, "hello world", e.Buffer().String())

	e.Execute(commands.Undo)
	assert.Equal(t, "hello", e.Buffer().String())
	assert.Equal(t, 5, e.Caret())

	e.Execute(commands.Redo)
	assert.Equal(t, "hello world", e.Buffer().String())
	assert.Equal(t, 11, e.Caret())
}

func TestUndoRedoWithoutHistory(t *testing.T) {
	e, d := newEditor(t, "same")
	e.Execute(commands.Undo)
	e.Execute(commands.Redo)
	assert.Equal(t, "same", e.Buffer().String())
	assert.Empty(t, d.notices)
}

func TestTypingAndDeleting(t *testing.T) {
	e, _ := newEditor(t, "")
	for _, r := range "abc" {
		e.InsertText(string(r))
	}
	e.Backspace()
	assert.Equal(t, "ab", e.Buffer().String())
	e.MoveLeft(false)
	e.DeleteForward()
	assert.Equal(t, "a", e.Buffer().String())
	e.DeleteForward()
	assert.Equal(t, "a", e.Buffer().String())

	e.Undo()
	e.Undo()
	assert.Equal(t, "abc", e.Buffer().String())
}

func TestOpenMissingFile(t *testing.T) {
	e, d := newEditor(t, "keep me")
	d.openPath, d.openOK = filepath.Join(t.TempDir(), "missing.txt"), true

	e.Execute(commands.Open)
	assert.Equal(t, []string{"File not found!"}, d.notices)
	assert.Equal(t, "keep me", e.Buffer().String())
	assert.Empty(t, e.Path())
}

func TestOpenDirectoryIsGenericFailure(t *testing.T) {
	e, d := newEditor(t, "keep me")
	d.openPath, d.openOK = t.TempDir(), true

	e.Open()
	assert.Equal(t, []string{"Something went wrong!"}, d.notices)
	assert.Equal(t, "keep me", e.Buffer().String())
}

func TestOpenCancelled(t *testing.T) {
	e, d := newEditor(t, "keep me")
	e.Open()
	assert.Empty(t, d.notices)
	assert.Equal(t, "keep me", e.Buffer().String())
}

func TestSaveThenOpen(t *testing.T) {
	dir := t.TempDir()
	content := "line one\nline two äöü\n\tindented\n"
	e, d := newEditor(t, content)
	d.saveDir, d.saveName, d.saveOK = dir, "doc.txt", true

	e.Execute(commands.Save)
	require.Empty(t, d.notices)
	assert.Equal(t, 1, d.saveCalls)
	path := filepath.Join(dir, "doc.txt")
	assert.Equal(t, path, e.Path())

	other, od := newEditor(t, "something else")
	od.openPath, od.openOK = path, true
	other.Open()
	require.Empty(t, od.notices)
	assert.Equal(t, content, other.Buffer().String())
	assert.Equal(t, "doc.txt", other.Title())
	assert.False(t, other.History().CanUndo())
}

func TestSaveUsesAssociatedPath(t *testing.T) {
	dir := t.TempDir()
	e, d := newEditor(t, "v1")
	d.saveDir, d.saveName, d.saveOK = dir, "doc.txt", true
	e.SaveAs()

	e.SetCaret(2, false)
	e.InsertText(" v2")
	assert.Equal(t, "doc.txt*", e.Title())
	e.Save()
	assert.Equal(t, 1, d.saveCalls)
	assert.Equal(t, "doc.txt", e.Title())

	raw, err := os.ReadFile(filepath.Join(dir, "doc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v1 v2", string(raw))
}

func TestSaveAsKeepsOnlyBaseName(t *testing.T) {
	dir := t.TempDir()
	var logged strings.Builder
	d := &fakeDialogs{confirm: -1}
	e := New(log.New(&logged, "", 0), config.Default(), d, &MemoryClipboard{})
	d.saveDir, d.saveName, d.saveOK = dir, filepath.Join("elsewhere", "name.txt"), true
	e.SaveAs()
	assert.Equal(t, filepath.Join(dir, "name.txt"), e.Path())
	assert.Contains(t, logged.String(), "has a directory part")

	logged.Reset()
	d.saveName = "plain.txt"
	e.SaveAs()
	assert.NotContains(t, logged.String(), "has a directory part")
}

func TestSaveAsCancelled(t *testing.T) {
	e, d := newEditor(t, "x")
	e.SaveAs()
	assert.Empty(t, e.Path())
	assert.Empty(t, d.notices)
}

func TestSaveAsFailure(t *testing.T) {
	e, d := newEditor(t, "x")
	d.saveDir, d.saveName, d.saveOK = filepath.Join(t.TempDir(), "no", "dir"), "a.txt", true
	e.SaveAs()
	assert.Equal(t, []string{"File not found!"}, d.notices)
	assert.Empty(t, e.Path())
}

func TestNewDocument(t *testing.T) {
	t.Run("yes saves first", func(t *testing.T) {
		dir := t.TempDir()
		e, d := newEditor(t, "draft")
		d.confirm = 0
		d.saveDir, d.saveName, d.saveOK = dir, "draft.txt", true

		e.Execute(commands.New)
		assert.Equal(t, "", e.Buffer().String())
		assert.Empty(t, e.Path())
		raw, err := os.ReadFile(filepath.Join(dir, "draft.txt"))
		require.NoError(t, err)
		assert.Equal(t, "draft", string(raw))
	})
	t.Run("no clears", func(t *testing.T) {
		e, d := newEditor(t, "draft")
		d.confirm = 1
		e.NewDocument()
		assert.Equal(t, "", e.Buffer().String())
		assert.Equal(t, 0, d.saveCalls)
	})
	t.Run("cancel clears by default", func(t *testing.T) {
		e, d := newEditor(t, "draft")
		d.confirm = 2
		e.NewDocument()
		assert.Equal(t, "", e.Buffer().String())
	})
	t.Run("cancel aborts when configured", func(t *testing.T) {
		e, d := newEditor(t, "draft")
		e.Config().NewAbortsOnCancel = true
		d.confirm = 2
		e.NewDocument()
		assert.Equal(t, "draft", e.Buffer().String())
	})
	t.Run("clearing can be undone", func(t *testing.T) {
		e, d := newEditor(t, "draft")
		d.confirm = 1
		e.NewDocument()
		e.Undo()
		assert.Equal(t, "draft", e.Buffer().String())
	})
}

func TestClipboard(t *testing.T) {
	e, _ := newEditor(t, "hello world")
	e.SetCaret(0, false)
	e.SetCaret(5, true)
	assert.Equal(t, "hello", e.SelectedText())

	e.Execute(commands.Copy)
	e.Execute(commands.Cut)
	assert.Equal(t, " world", e.Buffer().String())

	e.MoveDocumentEnd(false)
	e.Execute(commands.Paste)
	assert.Equal(t, " worldhello", e.Buffer().String())

	e.Execute(commands.SelectAll)
	e.InsertText("replaced")
	assert.Equal(t, "replaced", e.Buffer().String())
	e.Undo()
	assert.Equal(t, " worldhello", e.Buffer().String())
}

func TestDeleteSelection(t *testing.T) {
	e, _ := newEditor(t, "one two one")
	e.SetCaret(0, false)
	e.SetCaret(3, true)
	e.Execute(commands.Delete)
	assert.Equal(t, " two one", e.Buffer().String())

	e.Execute(commands.Delete)
	assert.Equal(t, " two one", e.Buffer().String())
}

func TestInsertDateTime(t *testing.T) {
	e, _ := newEditor(t, "Today: ")
	e.now = func() time.Time { return time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC) }
	e.SetCaret(0, false)
	e.Execute(commands.InsertDateTime)
	assert.Equal(t, "Today: 3/5/24, 2:07 PM", e.Buffer().String())
	assert.Equal(t, 0, e.Caret())
}

func TestFont(t *testing.T) {
	e, d := newEditor(t, "")
	assert.Equal(t, Font{Family: "Monospaced", Size: 12}, e.Font())

	e.Execute(commands.ZoomIn)
	assert.Equal(t, 14, e.Font().Size)
	for i := 0; i < 10; i++ {
		e.Execute(commands.ZoomOut)
	}
	assert.Equal(t, MinFontSize, e.Font().Size)

	d.font, d.fontOK = Font{Family: "Dialog", Size: 20}, true
	e.Execute(commands.SetFont)
	assert.Equal(t, "Dialog 20", e.Font().String())

	d.fontOK = false
	e.SetFont()
	assert.Equal(t, "Dialog 20", e.Font().String())
}

func TestClose(t *testing.T) {
	e, d := newEditor(t, "")
	d.confirm = 1
	e.Execute(commands.Close)
	assert.False(t, e.Closed())

	d.confirm = 0
	e.Close()
	assert.True(t, e.Closed())
	assert.Equal(t, []string{"Confirm Exit", "Confirm Exit"}, d.confirmed)
}

func TestRunCommand(t *testing.T) {
	e, d := newEditor(t, "abc")
	d.prompt, d.promptOK = "selecta", true
	e.Execute(commands.RunCommand)
	lo, hi, ok := e.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	d.prompt = "frobnicate"
	e.RunCommand()
	assert.Equal(t, []string{`Unknown command "frobnicate"`}, d.notices)
}

func TestHelp(t *testing.T) {
	e, d := newEditor(t, "")
	e.Execute(commands.Help)
	require.Len(t, d.notices, 1)
	assert.Contains(t, d.notices[0], "Save As")
	assert.Contains(t, d.notices[0], "https://www.google.com")
}

func TestVerticalMovement(t *testing.T) {
	e, _ := newEditor(t, "abcdef\nab\nabcdef")
	e.SetCaret(5, false)

	e.MoveDown(false)
	assert.Equal(t, 9, e.Caret())
	e.MoveDown(false)
	assert.Equal(t, 15, e.Caret())
	e.MoveDown(false)
	assert.Equal(t, 15, e.Caret())

	e.MoveUp(false)
	e.MoveUp(false)
	assert.Equal(t, 5, e.Caret())
	e.MoveUp(false)
	assert.Equal(t, 5, e.Caret())

	e.MoveLineStart(false)
	assert.Equal(t, 0, e.Caret())
	e.MoveLineEnd(true)
	assert.Equal(t, "abcdef", e.SelectedText())
	e.MoveLeft(false)
	assert.Equal(t, 0, e.Caret())
}
