package core

// Snapshot is a copy of everything a renderer needs. Taking one only brings
// the cursor into view; it never edits the buffer.
type Snapshot struct {
	Focus  Focus
	Status string
	Input  string

	// File list
	Notes    []string // display names in index order
	Selected int      // -1 when there are no notes

	// Open note
	OpenNote  string // display name, "" when none
	Modified  bool
	Lines     []string // the visible window of the buffer
	TopLine   int
	LineCount int
	Cursor    Position // absolute buffer position

	// Search popup
	Results        []int // FileIndex positions matching the query
	ResultSelected int
}

// ViewCursor is the cursor position relative to the first visible line.
func (s Snapshot) ViewCursor() Position {
	return Position{Row: s.Cursor.Row - s.TopLine, Col: s.Cursor.Col}
}

func (e *editor) Snapshot() Snapshot {
	window := e.buffer.VisibleWindow(e.state.ViewportHeight)

	selected := e.files.Selected()
	if e.files.Len() == 0 {
		selected = -1
	}

	openNote := ""
	if e.openPath != "" {
		openNote = DisplayName(e.openPath)
	}

	return Snapshot{
		Focus:          e.state.Focus,
		Status:         e.state.StatusLine,
		Input:          e.state.Input,
		Notes:          e.files.Names(),
		Selected:       selected,
		OpenNote:       openNote,
		Modified:       e.buffer.IsModified(),
		Lines:          window,
		TopLine:        e.buffer.ScrollTop(),
		LineCount:      e.buffer.LineCount(),
		Cursor:         e.buffer.GetCursor().Position,
		Results:        e.search.Results(),
		ResultSelected: e.search.Selected(),
	}
}
