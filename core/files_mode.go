package core

// filesMode navigates the note list.
type filesMode struct{}

func NewFilesMode() FocusMode { return &filesMode{} }

func (m *filesMode) Name() Focus { return FilesFocus }

func (m *filesMode) Enter(editor Editor) {
	editor.UpdateInput("")
}

func (m *filesMode) Exit(editor Editor) {}

func (m *filesMode) HandleKey(editor Editor, key KeyEvent) *EditorError {
	files := editor.GetFileIndex()

	switch key.Command {
	case CmdSwitchPane:
		editor.SetFocus(EditorFocus)
		return nil
	case CmdNewNote:
		editor.SetFocus(NewNoteFocus)
		return nil
	case CmdSearch:
		editor.SetFocus(SearchFocus)
		return nil
	case CmdSave:
		editor.Save()
		return nil
	case CmdNone:
	default:
		return nil
	}

	switch key.Key {
	case KeyTab:
		editor.SetFocus(EditorFocus)

	case KeyUp:
		files.SelectPrevious()

	case KeyDown:
		files.SelectNext()

	case KeyEnter:
		if err := editor.OpenSelected(); err != nil {
			return newEditorError(err)
		}
		editor.SetFocus(EditorFocus)
	}

	return nil
}
