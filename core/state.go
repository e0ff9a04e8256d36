package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

// State represents the complete current state of the editor
type State struct {
	Focus      Focus  // Current input context (Files, Editor, Help, NewNote, Search)
	StatusLine string // Content of the status line (bottom line)
	Input      string // Text typed into the NewNote or Search popup
	Quit       bool   // Flag indicating if the editor should exit

	// Viewport information
	ViewportHeight int // Number of buffer lines that can be displayed
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Focus:          FilesFocus,
		StatusLine:     ReadyMessage,
		Input:          "",
		Quit:           false,
		ViewportHeight: 20,
	}
}

// Concrete implementation of Editor
type editor struct {
	store  Store
	buffer Buffer
	files  *FileIndex
	search *SearchFilter

	currentMode FocusMode
	modes       map[Focus]FocusMode
	state       State

	openPath  string // Path of the note loaded in buffer, "" when none
	extension string

	clipboard    Clipboard // Clipboard interface for copy/paste
	logger       *slog.Logger
	updateSignal chan Signal
}

// New creates a new editor over store. The file index is populated from the
// store before New returns and the editor starts in Files focus.
func New(store Store, opts ...Option) Editor {
	e := &editor{
		store:        store,
		buffer:       NewBuffer(),
		files:        NewFileIndex(nil),
		search:       NewSearchFilter(),
		modes:        make(map[Focus]FocusMode),
		state:        InitialState(),
		extension:    DefaultExtension,
		logger:       slog.New(slog.DiscardHandler),
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	for _, opt := range opts {
		opt(e)
	}

	e.modes[FilesFocus] = NewFilesMode()
	e.modes[EditorFocus] = NewEditorMode()
	e.modes[HelpFocus] = NewHelpMode()
	e.modes[NewNoteFocus] = NewNewNoteMode()
	e.modes[SearchFocus] = NewSearchMode()

	if err := e.files.Rescan(e.store); err != nil {
		e.logger.Warn("failed to list notes", slog.Any("error", err))
		e.state.StatusLine = "could not list notes"
	}
	e.search.Reset(e.files)

	e.currentMode = e.modes[FilesFocus]
	e.currentMode.Enter(e)

	return e
}

func (e *editor) setMode(focus Focus) error {
	newMode, ok := e.modes[focus]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMode, focus)
	}

	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}

	e.currentMode = newMode
	e.state.Focus = focus
	e.currentMode.Enter(e)

	e.logger.Debug("focus changed", slog.String("focus", string(focus)))
	e.DispatchSignal(FocusSignal{focus: focus})

	return nil
}

func (e *editor) SetFocus(focus Focus) {
	if err := e.setMode(focus); err != nil {
		e.logger.Error("failed to change focus", slog.Any("error", err))
	}
}

func (e *editor) GetFocus() Focus {
	return e.state.Focus
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

func (e *editor) GetFileIndex() *FileIndex {
	return e.files
}

func (e *editor) GetSearch() *SearchFilter {
	return e.search
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal // Return the read-only channel
}

// HandleKey routes a key event. Quit and help are honoured in every focus
// before the active mode sees the key. Keys that do nothing in the current
// context are absorbed.
func (e *editor) HandleKey(key KeyEvent) error {
	if e.currentMode == nil {
		return ErrInvalidMode
	}

	if key.IsGlobal() {
		switch key.Command {
		case CmdQuit:
			e.Quit()
		case CmdToggleHelp:
			if e.state.Focus == HelpFocus {
				e.SetFocus(FilesFocus)
			} else {
				e.SetFocus(HelpFocus)
			}
		}
		return nil
	}

	if err := e.currentMode.HandleKey(e, key); err != nil {
		e.logger.Debug("key had no effect",
			slog.String("key", key.String()),
			slog.String("focus", string(e.state.Focus)),
			slog.Any("error", err.Error()),
		)
	}

	// Update derived state AFTER handling key
	e.ScrollViewport()

	return nil
}

func (e *editor) GetState() State {
	return e.state
}

// UpdateStatus is a helper for modes to update the status line
func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

// UpdateInput is a helper for modes to mirror their input line
func (e *editor) UpdateInput(input string) {
	e.state.Input = input
}

func (e *editor) SetViewportHeight(height int) {
	e.state.ViewportHeight = max(height, 1)
	e.ScrollViewport()
}

// ScrollViewport ensures the cursor is within the visible area
func (e *editor) ScrollViewport() {
	e.buffer.ScrollIntoView(e.state.ViewportHeight)
}

func (e *editor) OpenPath() string {
	return e.openPath
}

// OpenSelected loads the note under the file index selection.
func (e *editor) OpenSelected() error {
	path, ok := e.files.Current()
	if !ok {
		return ErrNoSelection
	}
	e.OpenNote(path)
	return nil
}

// OpenNote loads the note at path. A note that cannot be read opens empty and
// the failure is reported on the status line.
func (e *editor) OpenNote(path string) {
	content, err := e.store.Read(path)
	if err != nil {
		e.logger.Warn("failed to read note", slog.String("path", path), slog.Any("error", err))
		e.UpdateStatus("could not read " + DisplayName(path))
		e.DispatchError(ErrFailedToReadId, err)
		content = nil
	} else {
		e.UpdateStatus(OpenedMessage + " " + DisplayName(path))
	}

	e.buffer.SetContent(string(content))
	e.openPath = path
	e.ScrollViewport()
}

// CreateNote creates the note typed as name, selects it in the index and loads
// it. A name that already exists opens the existing note unchanged.
func (e *editor) CreateNote(name string) error {
	fileName, err := NoteFileName(name, e.extension)
	if err != nil {
		e.UpdateStatus(fmt.Sprintf("invalid note name %q", name))
		e.DispatchError(ErrInvalidNoteNameId, err)
		return err
	}

	path, err := e.store.Create(fileName)
	exists := errors.Is(err, fs.ErrExist)
	if err != nil && !exists {
		e.logger.Warn("failed to create note", slog.String("name", fileName), slog.Any("error", err))
		e.UpdateStatus("could not create " + fileName)
		e.DispatchError(ErrFailedToCreateId, err)
		return err
	}

	if err := e.files.Rescan(e.store); err != nil {
		e.logger.Warn("failed to list notes", slog.Any("error", err))
	}
	e.files.SelectPath(path)
	e.search.Refresh(e.files)

	if exists {
		e.OpenNote(path)
		return nil
	}

	e.buffer.SetContent("")
	e.openPath = path
	e.UpdateStatus(CreatedMessage + " " + fileName)
	e.logger.Info("note created", slog.String("path", path))
	e.DispatchSignal(CreateSignal{path: path})

	return nil
}

// Save writes the buffer to the open note. Failures leave the buffer modified.
func (e *editor) Save() {
	if e.openPath == "" {
		e.UpdateStatus(ErrNoNoteOpen.Error())
		e.DispatchError(ErrNoNoteOpenId, ErrNoNoteOpen)
		return
	}

	name := DisplayName(e.openPath)
	if err := e.store.Write(e.openPath, []byte(e.buffer.GetCurrentContent())); err != nil {
		e.logger.Warn("failed to save note", slog.String("path", e.openPath), slog.Any("error", err))
		e.UpdateStatus("could not save " + name)
		e.DispatchError(ErrFailedToSaveId, err)
		return
	}

	e.buffer.SaveContent()
	e.UpdateStatus(SavedMessage + " " + name)
	e.logger.Info("note saved", slog.String("path", e.openPath))
	e.DispatchMessage(SavedMessage, SavedMessage+" "+name)
	e.DispatchSignal(SaveSignal{path: e.openPath})
}

// Refresh rescans the store, keeping the selection on the same note when it
// still exists. The open buffer is left untouched.
func (e *editor) Refresh() {
	selected, hadSelection := e.files.Current()

	if err := e.files.Rescan(e.store); err != nil {
		e.logger.Warn("failed to list notes", slog.Any("error", err))
		e.UpdateStatus("could not list notes")
		e.DispatchError(ErrFailedToListId, err)
	}
	if hadSelection {
		e.files.SelectPath(selected)
	}
	e.search.Refresh(e.files)
}

func (e *editor) Copy() {
	if e.clipboard == nil {
		e.UpdateStatus(ErrClipboardUnavailable.Error())
		e.DispatchError(ErrCopyFailedId, ErrClipboardUnavailable)
		return
	}

	if err := e.clipboard.Write(e.buffer.GetCurrentContent()); err != nil {
		e.logger.Warn("failed to copy to clipboard", slog.Any("error", err))
		e.UpdateStatus("copy failed")
		e.DispatchError(ErrCopyFailedId, err)
		return
	}

	e.UpdateStatus(CopiedMessage)
	e.DispatchMessage(CopiedMessage)
}

func (e *editor) Paste() {
	if e.clipboard == nil {
		e.UpdateStatus(ErrClipboardUnavailable.Error())
		e.DispatchError(ErrPasteFailedId, ErrClipboardUnavailable)
		return
	}

	text, err := e.clipboard.Read()
	if err != nil {
		e.logger.Warn("failed to read clipboard", slog.Any("error", err))
		e.UpdateStatus("paste failed")
		e.DispatchError(ErrPasteFailedId, err)
		return
	}

	e.buffer.InsertText(text)
	e.ScrollViewport()
	e.UpdateStatus(PastedMessage)
}

func (e *editor) Quit() {
	e.state.Quit = true
	e.logger.Info("quit requested")
	e.DispatchSignal(QuitSignal{})
}
