package application

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"goditor/editor"
	"goditor/layout"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Dialogs are nested event loops on the UI goroutine. The window keeps
// being redrawn underneath and configuration reloads are still applied.

// modal repaints the window with the dialog on top until handle reports
// that the dialog is done. It returns false if the screen went away first.
func (app *Application) modal(draw func(), handle func(tcell.Event) bool) bool {
	s := app.screen
	for {
		app.render()
		s.HideCursor()
		draw()
		s.Show()

		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			app.HandleEvent(ev)
		default:
			if handle(ev) {
				return true
			}
		}
	}
}

// frame draws a centered dialog box with room for width x height cells of
// content and returns the content area.
func (app *Application) frame(title string, width, height int) layout.Dimensions {
	s := app.screen
	sw, sh := s.Size()
	width = min(max(width, runewidth.StringWidth(title))+4, sw)
	height = min(height+2, sh)
	box := layout.Dimensions{
		Origin: layout.Point{X: (sw - width) / 2, Y: (sh - height) / 2},
		Width:  width,
		Height: height,
	}
	fill(s, box, app.theme.Dialog)
	drawText(s, box.Origin.X+2, box.Origin.Y, box.Origin.X+width, app.theme.Dialog.Bold(true), title)

	return layout.Dimensions{
		Origin: layout.Point{X: box.Origin.X + 2, Y: box.Origin.Y + 1},
		Width:  max(0, width-4),
		Height: max(0, height-2),
	}
}

func (app *Application) drawLines(area layout.Dimensions, lines []string) {
	for i, line := range lines {
		if i >= area.Height {
			break
		}
		drawText(app.screen, area.Origin.X, area.Origin.Y+i, area.Origin.X+area.Width, app.theme.Dialog, line)
	}
}

// drawButtons lays out the labels on one row and returns where each went.
func (app *Application) drawButtons(area layout.Dimensions, y int, labels []string, focused int) []hit {
	hits := make([]hit, 0, len(labels))
	x := area.Origin.X
	for i, label := range labels {
		style := app.theme.Dialog
		if i == focused {
			style = app.theme.Highlight
		}
		start := x
		x = drawText(app.screen, x, y, area.Origin.X+area.Width, style, "[ "+label+" ]")
		hits = append(hits, hit{start, x, y, i})
		x += 2
	}
	return hits
}

func textWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}

func clicked(ev tcell.Event) (x, y int, ok bool) {
	mouse, isMouse := ev.(*tcell.EventMouse)
	if !isMouse || mouse.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	x, y = mouse.Position()
	return x, y, true
}

// Notice shows a message until it is acknowledged.
func (app *Application) Notice(title, message string) {
	app.log.Printf("Notice %v: %v", title, message)
	lines := strings.Split(message, "\n")
	width := max(textWidth(lines), 6)

	app.modal(func() {
		area := app.frame(title, width, len(lines)+2)
		app.drawLines(area, lines)
		app.drawButtons(area, area.Origin.Y+area.Height-1, []string{"OK"}, 0)
	}, func(ev tcell.Event) bool {
		if key, ok := ev.(*tcell.EventKey); ok {
			switch key.Key() {
			case tcell.KeyEnter, tcell.KeyEscape:
				return true
			case tcell.KeyRune:
				return key.Rune() == ' '
			}
		}
		_, _, ok := clicked(ev)
		return ok
	})
}

// Confirm offers the options as buttons. Tab and the arrow keys move the
// focus, the first letter of an option picks it directly.
func (app *Application) Confirm(title, message string, options []string, def int) int {
	if len(options) == 0 {
		return -1
	}
	lines := strings.Split(message, "\n")
	focused := max(0, min(def, len(options)-1))
	buttonsWidth := 0
	for _, o := range options {
		buttonsWidth += runewidth.StringWidth(o) + 6
	}
	width := max(textWidth(lines), buttonsWidth)

	var buttons []hit
	choice := -1
	app.modal(func() {
		area := app.frame(title, width, len(lines)+2)
		app.drawLines(area, lines)
		buttons = app.drawButtons(area, area.Origin.Y+area.Height-1, options, focused)
	}, func(ev tcell.Event) bool {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyLeft, tcell.KeyBacktab:
				focused = (focused + len(options) - 1) % len(options)
			case tcell.KeyRight, tcell.KeyTab:
				focused = (focused + 1) % len(options)
			case tcell.KeyEnter:
				choice = focused
				return true
			case tcell.KeyEscape:
				return true
			case tcell.KeyRune:
				r := strings.ToLower(string(ev.Rune()))
				for i, o := range options {
					if strings.HasPrefix(strings.ToLower(o), r) {
						choice = i
						return true
					}
				}
			}
		case *tcell.EventMouse:
			x, y, ok := clicked(ev)
			if !ok {
				return false
			}
			for _, h := range buttons {
				if h.contains(x, y) {
					choice = h.index
					return true
				}
			}
		}
		return false
	})
	app.log.Printf("Confirm %v: %v", title, choice)
	return choice
}

// Prompt asks for one line of text.
func (app *Application) Prompt(title, label, initial string) (string, bool) {
	return app.prompt(title, label, initial, nil)
}

type completion func(string) string

func (app *Application) prompt(title, label, initial string, complete completion) (string, bool) {
	input := []rune(initial)
	cursor := len(input)
	labelWidth := runewidth.StringWidth(label)
	width := max(labelWidth+40, runewidth.StringWidth(initial)+labelWidth+2)

	done := false
	answered := app.modal(func() {
		s := app.screen
		area := app.frame(title, width, 1)
		y := area.Origin.Y
		x := drawText(s, area.Origin.X, y, area.Origin.X+area.Width, app.theme.Dialog, label)
		field := layout.Dimensions{Origin: layout.Point{X: x, Y: y}, Width: area.Origin.X + area.Width - x, Height: 1}
		fill(s, field, app.theme.Text)
		if field.Empty() {
			return
		}

		// keep the cursor inside the field
		skip := max(0, runewidth.StringWidth(string(input[:cursor]))-field.Width+1)
		col := 0
		for _, r := range input {
			w := runewidth.RuneWidth(r)
			if col >= skip && col-skip+w <= field.Width {
				s.SetContent(x+col-skip, y, r, nil, app.theme.Text)
			}
			col += w
		}
		s.ShowCursor(x+runewidth.StringWidth(string(input[:cursor]))-skip, y)
	}, func(ev tcell.Event) bool {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			return false
		}
		switch key.Key() {
		case tcell.KeyEnter:
			done = true
			return true
		case tcell.KeyEscape:
			return true
		case tcell.KeyLeft:
			cursor = max(0, cursor-1)
		case tcell.KeyRight:
			cursor = min(len(input), cursor+1)
		case tcell.KeyHome, tcell.KeyCtrlA:
			cursor = 0
		case tcell.KeyEnd, tcell.KeyCtrlE:
			cursor = len(input)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if cursor > 0 {
				input = slices.Delete(input, cursor-1, cursor)
				cursor--
			}
		case tcell.KeyDelete:
			if cursor < len(input) {
				input = slices.Delete(input, cursor, cursor+1)
			}
		case tcell.KeyCtrlU:
			input = input[cursor:]
			cursor = 0
		case tcell.KeyTab:
			if complete != nil {
				input = []rune(complete(string(input)))
				cursor = len(input)
			}
		case tcell.KeyRune:
			input = slices.Insert(input, cursor, key.Rune())
			cursor++
		}
		return false
	})
	if !answered || !done {
		return "", false
	}
	return string(input), true
}

// completePath extends a partly typed path as far as it is unambiguous.
func completePath(partial string) string {
	matches, err := filepath.Glob(partial + "*")
	if err != nil || len(matches) == 0 {
		return partial
	}
	if len(matches) == 1 {
		if info, err := os.Stat(matches[0]); err == nil && info.IsDir() {
			return matches[0] + string(filepath.Separator)
		}
		return matches[0]
	}
	prefix := matches[0]
	for _, m := range matches[1:] {
		n := 0
		for n < len(prefix) && n < len(m) && prefix[n] == m[n] {
			n++
		}
		prefix = prefix[:n]
	}
	if len(prefix) < len(partial) {
		return partial
	}
	return prefix
}

func startDir(dir string) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}
	return strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)
}

// OpenFile asks for the path of a file to open. Tab completes file names.
func (app *Application) OpenFile(dir string) (string, bool) {
	path, ok := app.prompt("Open", "File: ", startDir(dir), completePath)
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// SaveFile asks for a destination path and splits it into the directory
// and the file name.
func (app *Application) SaveFile(dir string) (string, string, bool) {
	path, ok := app.prompt("Save As", "File: ", startDir(dir), completePath)
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return "", "", false
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return filepath.Clean(path), "", true
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Dir(path), filepath.Base(path), true
}

const fontSample = "AaBbYyZz 0123"

// ChooseFont lists the families with the current one selected. Up and
// Down pick a family, Left and Right or - and + change the size.
func (app *Application) ChooseFont(current editor.Font, families []string) (editor.Font, bool) {
	if len(families) == 0 {
		families = []string{current.Family}
	}
	selected := max(0, slices.Index(families, current.Family))
	size := current.Size
	width := max(textWidth(families)+2, runewidth.StringWidth(fontSample), 20)

	var rows []hit
	done := false
	answered := app.modal(func() {
		s := app.screen
		area := app.frame("Select Font", width, len(families)+4)
		xmax := area.Origin.X + area.Width

		rows = rows[:0]
		for i, family := range families {
			y := area.Origin.Y + i
			style := app.theme.Dialog
			if i == selected {
				style = app.theme.Highlight
			}
			end := drawText(s, area.Origin.X, y, xmax, style, " "+family+" ")
			rows = append(rows, hit{area.Origin.X, end, y, i})
		}

		y := area.Origin.Y + len(families) + 1
		drawText(s, area.Origin.X, y, xmax, app.theme.Dialog, "Size: < "+strconv.Itoa(size)+" >")
		drawText(s, area.Origin.X, y+1, xmax, FontStyle(app.theme.Text, families[selected]), fontSample)
	}, func(ev tcell.Event) bool {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected + len(families) - 1) % len(families)
			case tcell.KeyDown:
				selected = (selected + 1) % len(families)
			case tcell.KeyLeft:
				size = max(editor.MinFontSize, size-1)
			case tcell.KeyRight:
				size++
			case tcell.KeyEnter:
				done = true
				return true
			case tcell.KeyEscape:
				return true
			case tcell.KeyRune:
				switch ev.Rune() {
				case '-':
					size = max(editor.MinFontSize, size-1)
				case '+':
					size++
				}
			}
		case *tcell.EventMouse:
			x, y, ok := clicked(ev)
			if !ok {
				return false
			}
			for _, h := range rows {
				if h.contains(x, y) {
					selected = h.index
				}
			}
		}
		return false
	})
	if !answered || !done {
		return current, false
	}
	return editor.Font{Family: families[selected], Size: size}, true
}
