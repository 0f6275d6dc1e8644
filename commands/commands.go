package commands

import (
	"log"
	"slices"
	"strings"
)

// Command identifies one user action. Menu items, toolbar buttons, key
// bindings and the command prompt all carry a Command and are dispatched
// through a single Handler.
type Command int

const (
	None Command = iota
	New
	Open
	Save
	SaveAs
	Close
	Undo
	Redo
	Cut
	Copy
	Paste
	Delete
	SelectAll
	SetFont
	InsertDateTime
	ZoomIn
	ZoomOut
	ToggleStatusBar
	Help
	RunCommand
)

var names = map[Command]string{
	New:             "new",
	Open:            "open",
	Save:            "save",
	SaveAs:          "saveas",
	Close:           "close",
	Undo:            "undo",
	Redo:            "redo",
	Cut:             "cut",
	Copy:            "copy",
	Paste:           "paste",
	Delete:          "delete",
	SelectAll:       "selectall",
	SetFont:         "font",
	InsertDateTime:  "datetime",
	ZoomIn:          "zoomin",
	ZoomOut:         "zoomout",
	ToggleStatusBar: "statusbar",
	Help:            "help",
	RunCommand:      "command",
}

func (c Command) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "none"
}

type Handler func(Command)

// Commands resolves typed command names, as entered at the command prompt.
type Commands struct {
	log      *log.Logger
	handler  Handler
	commands map[string]Command
}

func NewCommands(log *log.Logger, handler Handler) *Commands {
	c := &Commands{log: log, handler: handler, commands: make(map[string]Command)}
	for cmd, name := range names {
		c.Register(name, cmd)
	}
	c.Register("quit", Close)
	c.Register("exit", Close)
	c.Register("w", Save)
	return c
}

// Exec runs the command whose name best matches command. It reports
// whether one was found.
func (c *Commands) Exec(command string) bool {
	cmd, ok := c.Lookup(command)
	if !ok {
		c.log.Printf("Command %s not found\n", command)
		return false
	}
	c.handler(cmd)
	return true
}

// Lookup matches exactly, then by prefix. Among several prefix matches
// the shortest name wins, ties broken alphabetically.
func (c *Commands) Lookup(commandPrefix string) (Command, bool) {
	commandPrefix = strings.ToLower(strings.TrimSpace(commandPrefix))
	if commandPrefix == "" {
		return None, false
	}
	if cmd, ok := c.commands[commandPrefix]; ok {
		return cmd, true
	}

	var matches []string
	for name := range c.commands {
		if strings.HasPrefix(name, commandPrefix) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return None, false
	}
	slices.SortFunc(matches, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return c.commands[matches[0]], true
}

func (c *Commands) Register(name string, command Command) {
	c.commands[name] = command
}

// Names lists the registered names in alphabetical order.
func (c *Commands) Names() []string {
	out := make([]string, 0, len(c.commands))
	for name := range c.commands {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
