package application

import (
	"fmt"
	"strconv"

	"goditor/commands"
	"goditor/config"
	"goditor/layout"
	"goditor/position"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const separator = '│'

// Draw renders the whole window and shows it.
func (app *Application) Draw() {
	app.render()
	app.screen.Show()
}

func (app *Application) render() {
	s := app.screen
	s.SetStyle(app.theme.Text)
	s.Clear()
	s.HideCursor()

	width, height := s.Size()
	app.windowLayout().StartLayouting(width, height)
	app.drawMenuDropdown()
}

func (app *Application) windowLayout() *layout.Flex {
	text := []layout.FlexItem{}
	if app.cfg.LineNumbers != config.LineNumbersOff {
		width := len(strconv.Itoa(app.editor.Buffer().LineCount())) + 1
		text = append(text, layout.FlexItemBox(app.lineNumberBox, layout.Exact(layout.Abs(max(3, width))), nil))
	} else {
		app.gutter = layout.Dimensions{}
	}
	text = append(text, layout.FlexItemBox(app.bufferBox, layout.Max(layout.Rel(1)), nil))

	items := []layout.FlexItem{
		layout.FlexItemBox(app.menuBarBox, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(app.toolbarBox, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(layout.EmptyBox, layout.Max(layout.Rel(1)), layout.Row(text...)),
	}
	if app.editor.StatusBarVisible() {
		items = append(items, layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(1)), nil))
	}
	return layout.Column(items...)
}

func drawText(s tcell.Screen, x, y, xmax int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x+w > xmax {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func fill(s tcell.Screen, dims layout.Dimensions, style tcell.Style) {
	for y := dims.Origin.Y; y < dims.Origin.Y+dims.Height; y++ {
		for x := dims.Origin.X; x < dims.Origin.X+dims.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (app *Application) menuBarBox(dims layout.Dimensions) {
	s := app.screen
	xmax := dims.Origin.X + dims.Width
	fill(s, dims, app.theme.Bar)

	app.menuTitles = app.menuTitles[:0]
	x := dims.Origin.X + 1
	for i, menu := range app.menus {
		style := app.theme.Bar
		if i == app.openMenu {
			style = app.theme.Highlight
		}
		start := x
		x = drawText(s, x, dims.Origin.Y, xmax, style, " "+menu.Title+" ")
		app.menuTitles = append(app.menuTitles, hit{start, x, dims.Origin.Y, i})
		x++
	}

	title := app.editor.Title()
	if app.cfg.Title != "" {
		title = app.cfg.Title + " - " + title
	}
	tx := xmax - runewidth.StringWidth(title) - 1
	if tx > x {
		drawText(s, tx, dims.Origin.Y, xmax, app.theme.Bar, title)
	}
}

func (app *Application) toolbarBox(dims layout.Dimensions) {
	s := app.screen
	xmax := dims.Origin.X + dims.Width
	fill(s, dims, app.theme.Bar)

	app.buttons = app.buttons[:0]
	history := app.editor.History()
	x := dims.Origin.X + 1
	for i, b := range app.toolbar {
		if b.Separator {
			x = drawText(s, x, dims.Origin.Y, xmax, app.theme.Bar, string(separator)+" ")
			continue
		}
		style := app.theme.Bar
		if (b.Command == commands.Undo && !history.CanUndo()) || (b.Command == commands.Redo && !history.CanRedo()) {
			style = app.theme.Disabled
		}
		start := x
		x = drawText(s, x, dims.Origin.Y, xmax, style, "["+b.Label+"]")
		app.buttons = append(app.buttons, hit{start, x, dims.Origin.Y, i})
		x++
	}
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	s := app.screen
	xmax := dims.Origin.X + dims.Width
	fill(s, dims, app.theme.Bar)

	drawText(s, dims.Origin.X+1, dims.Origin.Y, xmax, app.theme.Bar, app.editor.StatusText())
	right := app.editor.Font().String()
	rx := xmax - runewidth.StringWidth(right) - 1
	if rx > dims.Origin.X+len(app.editor.StatusText())+2 {
		drawText(s, rx, dims.Origin.Y, xmax, app.theme.Bar, right)
	}
}

// lineNumberBox only records where the gutter goes; it is drawn together
// with the text once the scroll position is known.
func (app *Application) lineNumberBox(dims layout.Dimensions) {
	app.gutter = dims
}

func (app *Application) bufferBox(dims layout.Dimensions) {
	app.textArea = dims
	if dims.Empty() {
		return
	}

	s := app.screen
	buf := app.editor.Buffer()
	runes := []rune(buf.String())
	starts := lineStarts(runes)
	caret := app.editor.Caret()
	caretLine, caretCol := app.caretPosition(runes, starts, caret)
	if app.follow {
		app.scrollTo(caretLine, caretCol)
	} else {
		app.top = max(0, min(app.top, len(starts)-1))
	}

	textStyle := FontStyle(app.theme.Text, app.editor.Font().Family)
	selStyle := FontStyle(app.theme.Selection, app.editor.Font().Family)
	lo, hi, selected := app.editor.Selection()

	xmin, xmax := dims.Origin.X, dims.Origin.X+dims.Width
	for row := 0; row < dims.Height; row++ {
		line := app.top + row
		if line >= len(starts) {
			break
		}
		y := dims.Origin.Y + row
		app.drawLineNumber(line, caretLine, y)

		start, end := lineBounds(runes, starts, line)
		col := 0
		for i := start; i < end; i++ {
			r := runes[i]
			w := app.runeWidth(r, col)
			style := textStyle
			if selected && i >= lo && i < hi {
				style = selStyle
			}
			for k := 0; k < w; k++ {
				x := xmin + col + k - app.left
				if x >= xmin && x < xmax {
					ch := r
					if r == '\t' || k > 0 {
						ch = ' '
					}
					s.SetContent(x, y, ch, nil, style)
				}
			}
			col += w
		}
		// a selected line break shows as one selected cell
		if selected && end < len(runes) && end >= lo && end < hi {
			if x := xmin + col - app.left; x >= xmin && x < xmax {
				s.SetContent(x, y, ' ', nil, selStyle)
			}
		}
	}

	if cx, cy := xmin+caretCol-app.left, dims.Origin.Y+caretLine-app.top; dims.Contains(cx, cy) {
		s.ShowCursor(cx, cy)
	}
}

func (app *Application) drawLineNumber(line, caretLine, y int) {
	g := app.gutter
	if g.Empty() {
		return
	}
	n := line + 1
	style := app.theme.Gutter
	if app.cfg.LineNumbers == config.LineNumbersRelative && line != caretLine {
		n = line - caretLine
		if n < 0 {
			n = -n
		}
	}
	if line == caretLine {
		style = app.theme.Current
	}
	drawText(app.screen, g.Origin.X, y, g.Origin.X+g.Width, style, fmt.Sprintf("%*d ", g.Width-1, n))
}

// caretPosition returns the 0-based line of the caret and its display
// column within that line.
func (app *Application) caretPosition(runes []rune, starts []int, caret int) (line, col int) {
	buf := app.editor.Buffer()
	row, err := position.RowOf(buf, caret)
	if err != nil {
		app.log.Printf("Caret position: %v", err)
		return 0, 0
	}
	line = min(row-1, len(starts)-1)
	for i := starts[line]; i < caret && i < len(runes); i++ {
		col += app.runeWidth(runes[i], col)
	}
	return line, col
}

func (app *Application) scrollTo(line, col int) {
	dims := app.textArea
	if line < app.top {
		app.top = line
	}
	if line >= app.top+dims.Height {
		app.top = line - dims.Height + 1
	}
	if col < app.left {
		app.left = col
	}
	if col >= app.left+dims.Width {
		app.left = col - dims.Width + 1
	}
	app.top = max(0, min(app.top, app.editor.Buffer().LineCount()-1))
}

func (app *Application) runeWidth(r rune, col int) int {
	if r == '\t' {
		tab := max(1, app.cfg.TabWidth)
		return tab - col%tab
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// offsetAt maps a screen cell inside the text area to a buffer offset.
func (app *Application) offsetAt(x, y int) (int, bool) {
	dims := app.textArea
	if !dims.Contains(x, y) {
		return 0, false
	}
	runes := []rune(app.editor.Buffer().String())
	starts := lineStarts(runes)
	line := min(app.top+y-dims.Origin.Y, len(starts)-1)
	start, end := lineBounds(runes, starts, line)

	target := x - dims.Origin.X + app.left
	col := 0
	for i := start; i < end; i++ {
		w := app.runeWidth(runes[i], col)
		if target < col+w {
			if target-col >= (w+1)/2 {
				return i + 1, true
			}
			return i, true
		}
		col += w
	}
	return end, true
}

func lineStarts(runes []rune) []int {
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineBounds(runes []rune, starts []int, line int) (start, end int) {
	start = starts[line]
	if line+1 < len(starts) {
		return start, starts[line+1] - 1
	}
	return start, len(runes)
}

func (app *Application) drawMenuDropdown() {
	app.menuItems = app.menuItems[:0]
	if app.openMenu < 0 || app.openMenu >= len(app.menuTitles) {
		return
	}
	s := app.screen
	menu := app.menus[app.openMenu]
	title := app.menuTitles[app.openMenu]

	labelWidth, keyWidth := 0, 0
	for _, item := range menu.Items {
		labelWidth = max(labelWidth, runewidth.StringWidth(item.Label))
		keyWidth = max(keyWidth, runewidth.StringWidth(item.ShortcutLabel()))
	}
	width := labelWidth + keyWidth + 4
	box := layout.Dimensions{Origin: layout.Point{X: title.x0, Y: title.y + 1}, Width: width, Height: len(menu.Items)}
	fill(s, box, app.theme.Dialog)

	for i, item := range menu.Items {
		y := box.Origin.Y + i
		style := app.theme.Dialog
		if i == app.menuItem {
			style = app.theme.Highlight
		}
		text := fmt.Sprintf(" %-*s  %*s ", labelWidth, item.Label, keyWidth, item.ShortcutLabel())
		end := drawText(s, box.Origin.X, y, box.Origin.X+width, style, text)
		app.menuItems = append(app.menuItems, hit{box.Origin.X, end, y, i})
	}
}
