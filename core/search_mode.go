package core

// searchMode filters the note list by a live substring query.
type searchMode struct{}

func NewSearchMode() FocusMode { return &searchMode{} }

func (m *searchMode) Name() Focus { return SearchFocus }

func (m *searchMode) Enter(editor Editor) {
	editor.GetSearch().Reset(editor.GetFileIndex())
	editor.UpdateInput("")
}

// Exit discards the query whichever way the popup closes.
func (m *searchMode) Exit(editor Editor) {
	editor.GetSearch().Reset(editor.GetFileIndex())
	editor.UpdateInput("")
}

func (m *searchMode) HandleKey(editor Editor, key KeyEvent) *EditorError {
	search := editor.GetSearch()
	files := editor.GetFileIndex()

	switch key.Key {
	case KeyEscape:
		editor.SetFocus(FilesFocus)
		return nil

	case KeyUp:
		search.SelectPrevious()
		return nil

	case KeyDown:
		search.SelectNext()
		return nil

	case KeyEnter:
		idx, err := search.Confirm()
		if err != nil {
			return newEditorError(err)
		}
		files.Select(idx)
		if err := editor.OpenSelected(); err != nil {
			return newEditorError(err)
		}
		editor.SetFocus(EditorFocus)
		return nil
	}

	if key.Command != CmdNone {
		return nil
	}

	if query, ok := editRune(search.Query(), key); ok {
		search.SetQuery(files, query)
		editor.UpdateInput(query)
	}
	return nil
}
