package commands

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Shortcut is a key chord. Rune is only set for tcell.KeyRune.
type Shortcut struct {
	Key  tcell.Key
	Rune rune
	Alt  bool
}

func Ctrl(k tcell.Key) Shortcut { return Shortcut{Key: k} }
func Alt(k tcell.Key) Shortcut  { return Shortcut{Key: k, Alt: true} }
func AltRune(r rune) Shortcut   { return Shortcut{Key: tcell.KeyRune, Rune: r, Alt: true} }
func Key(k tcell.Key) Shortcut  { return Shortcut{Key: k} }

// ShortcutOf reduces a key event to the chord it represents. Ctrl and
// Shift are carried by the tcell key itself.
func ShortcutOf(ev *tcell.EventKey) Shortcut {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	if ev.Key() == tcell.KeyRune {
		return Shortcut{Key: tcell.KeyRune, Rune: unicode.ToLower(ev.Rune()), Alt: alt}
	}
	return Shortcut{Key: ev.Key(), Alt: alt}
}

func (s Shortcut) String() string {
	var name string
	if s.Key == tcell.KeyRune {
		name = strings.ToUpper(string(s.Rune))
	} else {
		name = tcell.KeyNames[s.Key]
	}
	if s.Alt {
		return "Alt+" + name
	}
	return name
}

type Item struct {
	Label     string
	Command   Command
	Shortcuts []Shortcut
}

// ShortcutLabel is the first shortcut, as shown next to a menu item.
func (i Item) ShortcutLabel() string {
	if len(i.Shortcuts) == 0 {
		return ""
	}
	return i.Shortcuts[0].String()
}

type Menu struct {
	Title string
	Items []Item
}

// MenuBar is the File/Edit/View/Help menu structure.
func MenuBar() []Menu {
	return []Menu{
		{Title: "File", Items: []Item{
			{"New", New, []Shortcut{Ctrl(tcell.KeyCtrlN), Alt(tcell.KeyF1)}},
			{"Open", Open, []Shortcut{Ctrl(tcell.KeyCtrlO), Alt(tcell.KeyF2)}},
			{"Save", Save, []Shortcut{Ctrl(tcell.KeyCtrlS), Alt(tcell.KeyF3)}},
			{"Save As", SaveAs, []Shortcut{Ctrl(tcell.KeyCtrlW), Alt(tcell.KeyF4)}},
			{"Close", Close, []Shortcut{Ctrl(tcell.KeyCtrlQ), Alt(tcell.KeyF5)}},
		}},
		{Title: "Edit", Items: []Item{
			{"Undo", Undo, []Shortcut{Ctrl(tcell.KeyCtrlZ), AltRune('z')}},
			{"Redo", Redo, []Shortcut{Ctrl(tcell.KeyCtrlY), AltRune('y')}},
			{"Cut", Cut, []Shortcut{Ctrl(tcell.KeyCtrlX), Alt(tcell.KeyDelete)}},
			{"Copy", Copy, []Shortcut{Ctrl(tcell.KeyCtrlC), AltRune('c')}},
			{"Paste", Paste, []Shortcut{Ctrl(tcell.KeyCtrlV), AltRune('v')}},
			{"Delete", Delete, []Shortcut{AltRune('d')}},
			{"Select All", SelectAll, []Shortcut{Ctrl(tcell.KeyCtrlA), AltRune('a')}},
			{"Set Font", SetFont, []Shortcut{Key(tcell.KeyF9), Alt(tcell.KeyF9)}},
			{"Print Date and Time", InsertDateTime, []Shortcut{Ctrl(tcell.KeyCtrlT), AltRune('1')}},
		}},
		{Title: "View", Items: []Item{
			{"Status Bar", ToggleStatusBar, []Shortcut{Ctrl(tcell.KeyCtrlB)}},
			{"Zoom In", ZoomIn, []Shortcut{AltRune('+')}},
			{"Zoom Out", ZoomOut, []Shortcut{AltRune('-')}},
		}},
		{Title: "Help", Items: []Item{
			{"Get Help", Help, []Shortcut{Key(tcell.KeyF1)}},
			{"Command...", RunCommand, []Shortcut{Ctrl(tcell.KeyCtrlP)}},
		}},
	}
}

// Button is a toolbar entry. A Button with Separator set draws a gap.
type Button struct {
	Label     string
	Command   Command
	Separator bool
}

func Toolbar() []Button {
	return []Button{
		{Label: "New", Command: New},
		{Label: "Open", Command: Open},
		{Label: "Save", Command: Save},
		{Separator: true},
		{Label: "Undo", Command: Undo},
		{Label: "Redo", Command: Redo},
		{Separator: true},
		{Label: "A+", Command: ZoomIn},
		{Label: "A-", Command: ZoomOut},
		{Separator: true},
		{Label: "Close", Command: Close},
	}
}

// Keymap maps key chords to commands.
type Keymap map[Shortcut]Command

// DefaultKeymap collects every shortcut of the menu bar.
func DefaultKeymap(menus []Menu) Keymap {
	k := make(Keymap)
	for _, menu := range menus {
		for _, item := range menu.Items {
			for _, s := range item.Shortcuts {
				k[s] = item.Command
			}
		}
	}
	return k
}

func (k Keymap) Lookup(ev *tcell.EventKey) (Command, bool) {
	cmd, ok := k[ShortcutOf(ev)]
	return cmd, ok
}
