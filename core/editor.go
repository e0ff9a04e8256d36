package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (character position in the line)
}

// Editor is the note editor: it owns the file index, the search filter and the
// open note's buffer, and routes key events through the active focus.
type Editor interface {
	// Components
	GetBuffer() Buffer
	GetFileIndex() *FileIndex
	GetSearch() *SearchFilter

	// Focus handling
	GetFocus() Focus
	SetFocus(Focus)

	// Event handling
	HandleKey(key KeyEvent) error // Process a key press

	// State Management
	GetState() State       // Get the current editor state
	UpdateStatus(string)   // Helper to set the status line
	UpdateInput(string)    // Helper to set the NewNote/Search input line
	SetViewportHeight(int) // Number of buffer lines the presentation shows
	ScrollViewport()       // Keep the cursor row inside the scroll window
	Snapshot() Snapshot    // Read-only view for renderers

	// Notes
	OpenPath() string             // Path of the open note, "" when none
	OpenSelected() error          // Load the selected note into the buffer
	OpenNote(path string)         // Load the note at path into the buffer
	CreateNote(name string) error // Create, select and open a new note
	Save()                        // Persist the buffer to the open note
	Refresh()                     // Rescan the notes directory
	Copy()                        // Copy the buffer to the clipboard
	Paste()                       // Insert clipboard text at the cursor
	Quit()                        // Signal to quit the editor

	GetUpdateSignalChan() <-chan Signal  // For UI updates
	DispatchError(id ErrorId, err error) // Dispatch errors to consumers
	DispatchMessage(args ...string)      // Dispatch (success) messages to consumers
	DispatchSignal(signal Signal)        // Dispatch signals to consumers
}
