package editor

import "fmt"

// Font is the family and point size the text area is shown in.
type Font struct {
	Family string
	Size   int
}

func (f Font) String() string {
	return fmt.Sprintf("%s %d", f.Family, f.Size)
}

// Dialogs are the modal interactions the editor needs from its window.
// Every method blocks until the user answers.
type Dialogs interface {
	// OpenFile asks for an existing file, starting in dir.
	OpenFile(dir string) (path string, ok bool)
	// SaveFile asks for a destination. It returns the directory the
	// chooser ended in and the entered file name separately.
	SaveFile(dir string) (chosenDir, name string, ok bool)
	ChooseFont(current Font, families []string) (Font, bool)
	// Confirm returns the index of the chosen option, or -1 if the dialog
	// was dismissed.
	Confirm(title, message string, options []string, def int) int
	Prompt(title, label, initial string) (string, bool)
	Notice(title, message string)
}
