package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnsupportedPresentation is returned for a theme that cannot be
// applied. The previous theme stays in effect.
var ErrUnsupportedPresentation = errors.New("unsupported presentation")

// Theme is the look and feel of the window.
type Theme struct {
	Name      string
	Text      tcell.Style
	Selection tcell.Style
	Gutter    tcell.Style
	Current   tcell.Style // gutter entry of the caret line
	Bar       tcell.Style // menu bar, toolbar and status bar
	Disabled  tcell.Style
	Highlight tcell.Style // open menu, focused dialog button
	Dialog    tcell.Style
}

var DefaultStyle = tcell.StyleDefault
var LightStyle = tcell.StyleDefault.Dim(true)

var themes = map[string]Theme{
	"default": {
		Name:      "default",
		Text:      DefaultStyle,
		Selection: DefaultStyle.Reverse(true),
		Gutter:    LightStyle,
		Current:   DefaultStyle.Bold(true),
		Bar:       DefaultStyle.Reverse(true),
		Disabled:  DefaultStyle.Reverse(true).Dim(true),
		Highlight: DefaultStyle.Bold(true),
		Dialog:    DefaultStyle.Reverse(true),
	},
	"light": {
		Name:      "light",
		Text:      tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Selection: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Gutter:    tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorWhite),
		Current:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true),
		Bar:       tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		Disabled:  tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorSilver),
		Highlight: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Dialog:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	},
	"dark": {
		Name:      "dark",
		Text:      tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
		Selection: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal),
		Gutter:    tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		Current:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
		Bar:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Disabled:  tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorNavy),
		Highlight: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal),
		Dialog:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple),
	},
}

// LookupTheme finds a theme by name, case insensitively.
func LookupTheme(name string) (Theme, error) {
	theme, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return themes["default"], fmt.Errorf("%w: theme %q", ErrUnsupportedPresentation, name)
	}
	return theme, nil
}

// FontStyle renders a font family on top of style. A terminal has one
// face, so families only differ in their attributes.
func FontStyle(style tcell.Style, family string) tcell.Style {
	family = strings.ToLower(family)
	if strings.Contains(family, "bold") {
		style = style.Bold(true)
	}
	if strings.Contains(family, "italic") {
		style = style.Italic(true)
	}
	if strings.Contains(family, "dialog") {
		style = style.Dim(true)
	}
	return style
}
