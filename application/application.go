// Package application is the terminal window of the editor: menu bar,
// toolbar, text area, status bar and the modal dialogs, drawn with tcell.
// Everything runs on the goroutine that calls Run.
package application

import (
	"log"

	"goditor/commands"
	"goditor/config"
	"goditor/editor"
	"goditor/layout"

	"github.com/gdamore/tcell/v2"
)

// hit is a clickable span on one screen row.
type hit struct {
	x0, x1, y int
	index     int
}

func (h hit) contains(x, y int) bool {
	return y == h.y && x >= h.x0 && x < h.x1
}

type Application struct {
	screen tcell.Screen
	editor *editor.Editor
	cfg    *config.EditorConfig
	theme  Theme
	keymap commands.Keymap

	menus   []commands.Menu
	toolbar []commands.Button

	// menu state; openMenu is -1 while all menus are closed
	openMenu   int
	menuItem   int
	menuTitles []hit
	menuItems  []hit
	buttons    []hit

	textArea layout.Dimensions
	gutter   layout.Dimensions
	top      int  // first visible line
	left     int  // first visible display column
	follow   bool // scroll the caret into view; off after wheel scrolling

	dragging bool
	pasting  bool
	pasted   []rune // text of the bracketed paste in progress

	log *log.Logger
}

// New creates the window and the editor it shows.
func New(log *log.Logger, screen tcell.Screen, cfg *config.EditorConfig, clipboard editor.Clipboard) *Application {
	menus := commands.MenuBar()
	app := &Application{
		screen:   screen,
		cfg:      cfg,
		theme:    themes["default"],
		keymap:   commands.DefaultKeymap(menus),
		menus:    menus,
		toolbar:  commands.Toolbar(),
		openMenu: -1,
		follow:   true,
		log:      log,
	}
	app.editor = editor.New(log, cfg, app, clipboard)
	return app
}

func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// ApplyTheme switches the look and feel. An unknown theme leaves the
// current one in place.
func (app *Application) ApplyTheme(name string) error {
	theme, err := LookupTheme(name)
	if err != nil {
		return err
	}
	app.theme = theme
	app.screen.SetStyle(theme.Text)
	app.log.Printf("Applied theme %v", theme.Name)
	return nil
}

// Reconfigure applies a configuration reloaded from disk.
func (app *Application) Reconfigure(cfg *config.EditorConfig) {
	app.cfg = cfg
	app.editor.SetConfig(cfg)
	if err := app.ApplyTheme(cfg.Theme); err != nil {
		app.editor.ReportError(err)
	}
}

// ConfigChanged is safe to call from any goroutine. The new configuration
// is applied on the UI goroutine.
func (app *Application) ConfigChanged(cfg *config.EditorConfig) {
	if err := app.screen.PostEvent(tcell.NewEventInterrupt(cfg)); err != nil {
		app.log.Printf("Dropped config change: %v", err)
	}
}

// Run processes events until the editor is closed.
func (app *Application) Run() {
	if err := app.ApplyTheme(app.cfg.Theme); err != nil {
		app.Draw()
		app.editor.ReportError(err)
	}
	app.editor.SetCaret(app.editor.Caret(), false)

	for !app.editor.Closed() {
		app.Draw()
		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		app.HandleEvent(ev)
	}
}

func (app *Application) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *tcell.EventInterrupt:
		if cfg, ok := ev.Data().(*config.EditorConfig); ok {
			app.Reconfigure(cfg)
		}
	case *tcell.EventPaste:
		app.handlePaste(ev)
	case *tcell.EventKey:
		app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) {
	app.follow = true
	if app.pasting {
		app.collectPaste(ev)
		return
	}
	if app.openMenu >= 0 {
		app.handleMenuKey(ev)
		return
	}
	if ev.Key() == tcell.KeyF10 {
		app.openMenu, app.menuItem = 0, 0
		return
	}
	if cmd, ok := app.keymap.Lookup(ev); ok {
		app.editor.Execute(cmd)
		return
	}
	if app.handleMovementKey(ev) {
		return
	}
	app.handleTextKey(ev)
}

func (app *Application) handleMovementKey(ev *tcell.EventKey) bool {
	e := app.editor
	extend := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	page := max(1, app.textArea.Height-1)

	switch ev.Key() {
	case tcell.KeyLeft:
		e.MoveLeft(extend)
	case tcell.KeyRight:
		e.MoveRight(extend)
	case tcell.KeyUp:
		e.MoveUp(extend)
	case tcell.KeyDown:
		e.MoveDown(extend)
	case tcell.KeyPgUp:
		e.MoveLines(-page, extend)
	case tcell.KeyPgDn:
		e.MoveLines(page, extend)
	case tcell.KeyHome:
		if ctrl {
			e.MoveDocumentStart(extend)
		} else {
			e.MoveLineStart(extend)
		}
	case tcell.KeyEnd:
		if ctrl {
			e.MoveDocumentEnd(extend)
		} else {
			e.MoveLineEnd(extend)
		}
	default:
		return false
	}
	return true
}

func (app *Application) handleTextKey(ev *tcell.EventKey) {
	e := app.editor
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt == 0 {
			e.InsertText(string(ev.Rune()))
		}
	case tcell.KeyEnter:
		e.InsertText("\n")
	case tcell.KeyTab:
		e.InsertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Backspace()
	case tcell.KeyDelete:
		e.DeleteForward()
	}
}

// handlePaste inserts everything between the start and end of a
// bracketed paste as one edit.
func (app *Application) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		app.pasting = true
		app.pasted = app.pasted[:0]
		return
	}
	app.pasting = false
	if len(app.pasted) > 0 {
		app.editor.InsertText(string(app.pasted))
	}
	app.pasted = app.pasted[:0]
}

func (app *Application) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		app.pasted = append(app.pasted, ev.Rune())
	case tcell.KeyEnter:
		app.pasted = append(app.pasted, '\n')
	case tcell.KeyTab:
		app.pasted = append(app.pasted, '\t')
	}
}

func (app *Application) handleMenuKey(ev *tcell.EventKey) {
	items := app.menus[app.openMenu].Items
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF10:
		app.openMenu = -1
	case tcell.KeyLeft:
		app.openMenu = (app.openMenu + len(app.menus) - 1) % len(app.menus)
		app.menuItem = 0
	case tcell.KeyRight:
		app.openMenu = (app.openMenu + 1) % len(app.menus)
		app.menuItem = 0
	case tcell.KeyUp:
		app.menuItem = (app.menuItem + len(items) - 1) % len(items)
	case tcell.KeyDown:
		app.menuItem = (app.menuItem + 1) % len(items)
	case tcell.KeyEnter:
		app.activateMenuItem(app.menuItem)
	}
}

func (app *Application) activateMenuItem(i int) {
	cmd := app.menus[app.openMenu].Items[i].Command
	app.openMenu = -1
	app.editor.Execute(cmd)
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		app.top = max(0, app.top-3)
		app.follow = false
		return
	case buttons&tcell.WheelDown != 0:
		app.top += 3
		app.follow = false
		return
	case buttons&tcell.Button1 == 0:
		app.dragging = false
		return
	}

	app.follow = true
	if app.dragging {
		if offset, ok := app.offsetAt(x, y); ok {
			app.editor.SetCaret(offset, true)
		}
		return
	}

	if app.openMenu >= 0 {
		for _, h := range app.menuItems {
			if h.contains(x, y) {
				app.activateMenuItem(h.index)
				return
			}
		}
	}
	for _, h := range app.menuTitles {
		if h.contains(x, y) {
			if app.openMenu == h.index {
				app.openMenu = -1
			} else {
				app.openMenu, app.menuItem = h.index, 0
			}
			return
		}
	}
	app.openMenu = -1

	for _, h := range app.buttons {
		if h.contains(x, y) {
			app.editor.Execute(app.toolbar[h.index].Command)
			return
		}
	}
	if offset, ok := app.offsetAt(x, y); ok {
		extend := ev.Modifiers()&tcell.ModShift != 0
		app.editor.SetCaret(offset, extend)
		app.dragging = true
	}
}
