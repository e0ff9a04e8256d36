package core

// editorMode edits the open note's buffer.
type editorMode struct{}

func NewEditorMode() FocusMode { return &editorMode{} }

func (m *editorMode) Name() Focus { return EditorFocus }

func (m *editorMode) Enter(editor Editor) {
	editor.UpdateInput("")
}

func (m *editorMode) Exit(editor Editor) {}

func (m *editorMode) HandleKey(editor Editor, key KeyEvent) *EditorError {
	buffer := editor.GetBuffer()

	switch key.Command {
	case CmdSwitchPane:
		editor.SetFocus(FilesFocus)
		return nil
	case CmdSave:
		editor.Save()
		return nil
	case CmdSearch:
		editor.SetFocus(SearchFocus)
		return nil
	case CmdCopy:
		editor.Copy()
		return nil
	case CmdPaste:
		editor.Paste()
		return nil
	case CmdNone:
	default:
		return nil
	}

	switch key.Key {
	case KeyTab:
		editor.SetFocus(FilesFocus)
		return nil

	case KeyEnter:
		buffer.SplitLine()
		return nil

	case KeyBackspace:
		return newEditorError(buffer.Backspace())

	case KeyLeft:
		return newEditorError(buffer.MoveCursor(DirLeft))
	case KeyRight:
		return newEditorError(buffer.MoveCursor(DirRight))
	case KeyUp:
		return newEditorError(buffer.MoveCursor(DirUp))
	case KeyDown:
		return newEditorError(buffer.MoveCursor(DirDown))

	case KeyHome:
		cursor := buffer.GetCursor()
		cursor.MoveToLineStart()
		buffer.SetCursor(cursor)
		return nil

	case KeyEnd:
		cursor := buffer.GetCursor()
		cursor.MoveToLineEnd(buffer)
		buffer.SetCursor(cursor)
		return nil

	case KeySpace:
		return newEditorError(buffer.InsertRune(' '))
	}

	if key.Rune != 0 && key.Modifiers&(ModCtrl|ModAlt) == 0 {
		return newEditorError(buffer.InsertRune(key.Rune))
	}

	return nil
}
