package core

type helpMode struct{}

func NewHelpMode() FocusMode { return &helpMode{} }

func (m *helpMode) Name() Focus { return HelpFocus }

func (m *helpMode) Enter(editor Editor) {
	editor.UpdateInput("")
}

func (m *helpMode) Exit(editor Editor) {}

// HandleKey only leaves the overlay. Closing help always lands in Files.
func (m *helpMode) HandleKey(editor Editor, key KeyEvent) *EditorError {
	if key.Key == KeyEscape {
		editor.SetFocus(FilesFocus)
	}
	return nil
}
