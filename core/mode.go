package core

type Focus string

const (
	FilesFocus   Focus = "files"
	EditorFocus  Focus = "editor"
	HelpFocus    Focus = "help"
	NewNoteFocus Focus = "new-note"
	SearchFocus  Focus = "search"
)

// FocusMode is the input-handling context for one Focus.
type FocusMode interface {
	Name() Focus
	// HandleKey processes a key press that was not consumed globally. Mode
	// changes happen through editor.SetFocus.
	HandleKey(editor Editor, key KeyEvent) *EditorError
	Enter(editor Editor) // Called when entering the mode
	Exit(editor Editor)  // Called when exiting the mode
}

// editRune removes the last rune of s on backspace or appends the key's rune.
// It reports whether s changed.
func editRune(s string, key KeyEvent) (string, bool) {
	switch {
	case key.Key == KeyBackspace:
		if s == "" {
			return s, false
		}
		runes := []rune(s)
		return string(runes[:len(runes)-1]), true
	case key.Key == KeySpace:
		return s + " ", true
	case key.Rune != 0 && key.Modifiers&(ModCtrl|ModAlt) == 0:
		return s + string(key.Rune), true
	}
	return s, false
}
