package core

// newNoteMode collects the name of a note to create.
type newNoteMode struct {
	nameBuffer string
}

func NewNewNoteMode() FocusMode { return &newNoteMode{} }

func (m *newNoteMode) Name() Focus { return NewNoteFocus }

func (m *newNoteMode) Enter(editor Editor) {
	m.nameBuffer = "" // Clear buffer on entry
	editor.UpdateInput("")
}

func (m *newNoteMode) Exit(editor Editor) {
	m.nameBuffer = ""
	editor.UpdateInput("")
}

func (m *newNoteMode) HandleKey(editor Editor, key KeyEvent) *EditorError {
	switch key.Key {
	case KeyEscape:
		editor.SetFocus(FilesFocus)
		return nil

	case KeyEnter:
		// An invalid or failed name keeps the popup open so it can be fixed.
		if err := editor.CreateNote(m.nameBuffer); err != nil {
			return newEditorError(err)
		}
		editor.SetFocus(EditorFocus)
		return nil
	}

	if key.Command != CmdNone {
		return nil
	}

	if name, ok := editRune(m.nameBuffer, key); ok {
		m.nameBuffer = name
		editor.UpdateInput(m.nameBuffer)
	}
	return nil
}
