package commands

import (
	"io"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	var ran []Command
	c := NewCommands(log.New(io.Discard, "", 0), func(cmd Command) { ran = append(ran, cmd) })

	cases := []struct {
		input string
		want  Command
	}{
		{"save", Save},
		{"saveas", SaveAs},
		{"sa", Save},
		{"SAVEA", SaveAs},
		{" undo ", Undo},
		{"q", Close},
		{"w", Save},
		{"z", ZoomIn},
		{"font", SetFont},
	}
	for _, tc := range cases {
		got, ok := c.Lookup(tc.input)
		require.True(t, ok, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}

	_, ok := c.Lookup("nonsense")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)

	assert.True(t, c.Exec("redo"))
	assert.False(t, c.Exec("xyz"))
	assert.Equal(t, []Command{Redo}, ran)
}

func TestEveryCommandHasAName(t *testing.T) {
	for cmd := New; cmd <= RunCommand; cmd++ {
		assert.NotEqual(t, "none", cmd.String(), "command %d", int(cmd))
	}
	assert.Equal(t, "none", None.String())
}

func TestMenuBar(t *testing.T) {
	menus := MenuBar()
	titles := make([]string, len(menus))
	for i, m := range menus {
		titles[i] = m.Title
	}
	assert.Equal(t, []string{"File", "Edit", "View", "Help"}, titles)

	var file []string
	for _, item := range menus[0].Items {
		file = append(file, item.Label)
	}
	assert.Equal(t, []string{"New", "Open", "Save", "Save As", "Close"}, file)
	assert.Len(t, menus[1].Items, 9)
}

func TestKeymap(t *testing.T) {
	k := DefaultKeymap(MenuBar())

	cmd, ok := k.Lookup(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	require.True(t, ok)
	assert.Equal(t, Save, cmd)

	cmd, ok = k.Lookup(tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModAlt))
	require.True(t, ok)
	assert.Equal(t, Undo, cmd)

	cmd, ok = k.Lookup(tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModAlt))
	require.True(t, ok)
	assert.Equal(t, Save, cmd)

	_, ok = k.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}

func TestShortcutLabel(t *testing.T) {
	assert.Equal(t, "Alt+Z", AltRune('z').String())
	assert.Equal(t, "Alt+F3", Alt(tcell.KeyF3).String())
	assert.Equal(t, "", Item{Label: "x"}.ShortcutLabel())
}

func TestToolbarCommands(t *testing.T) {
	var cmds []Command
	for _, b := range Toolbar() {
		if !b.Separator {
			cmds = append(cmds, b.Command)
		}
	}
	assert.Equal(t, []Command{New, Open, Save, Undo, Redo, ZoomIn, ZoomOut, Close}, cmds)
}
