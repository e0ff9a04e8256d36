package bubble_adapter

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/gonotes/core"
)

type Theme struct {
	FilesFocusStyle  lipgloss.Style
	EditorFocusStyle lipgloss.Style
	HelpFocusStyle   lipgloss.Style
	PopupFocusStyle  lipgloss.Style
	PaneStyle        lipgloss.Style
	ActivePaneStyle  lipgloss.Style
	TitleStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	CursorStyle      lipgloss.Style
	StatusLineStyle  lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	PopupStyle       lipgloss.Style
	PlaceholderStyle lipgloss.Style
	ModifiedStyle    lipgloss.Style
}

var DefaultTheme = Theme{
	FilesFocusStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	EditorFocusStyle: lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	HelpFocusStyle:   lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	PopupFocusStyle:  lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	PaneStyle:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	ActivePaneStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
	TitleStyle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
	SelectedStyle:    lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255")).Bold(true),
	CursorStyle:      lipgloss.NewStyle().Reverse(true),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	PopupStyle:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1),
	PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ModifiedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

// Model is the bubbletea model driving an editor.Editor.
type Model struct {
	editor editor.Editor
	keys   KeyMap
	help   help.Model
	theme  Theme

	width      int
	height     int
	filesWidth int // percent of the terminal width used by the file list

	message        string
	err            error
	messageTimeout time.Duration
	clearMsgCancel context.CancelFunc
}

// ErrorMsg carries an error reported by the editor.
type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

// MessageMsg carries a transient status message reported by the editor.
type MessageMsg struct {
	ID   string
	Text string
}

type SaveMsg struct {
	Path string
}

type CreateMsg struct {
	Path string
}

type FocusMsg struct {
	Focus editor.Focus
}

type QuitMsg struct{}

// NotesChangedMsg asks the model to rescan the notes directory. It is sent
// from outside the program, e.g. by a directory watcher.
type NotesChangedMsg struct{}

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithTheme replaces the default theme.
func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithFilesWidth sets the file list width as a percentage of the terminal.
func WithFilesWidth(percent int) Option {
	return func(m *Model) {
		m.filesWidth = min(max(percent, 10), 80)
	}
}

// WithMessageTimeout sets how long transient messages stay on screen.
func WithMessageTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.messageTimeout = d
		}
	}
}

func New(e editor.Editor, opts ...Option) Model {
	m := Model{
		editor:         e,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		theme:          DefaultTheme,
		width:          80,
		height:         24,
		filesWidth:     30,
		messageTimeout: 3 * time.Second,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.SetSize(m.width, m.height)

	return m
}

// SetSize resizes the layout and tells the editor how many lines it shows.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.editor.SetViewportHeight(m.paneBodyHeight())
}

func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// DispatchMessage shows message for duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil
	return m.dispatchClearMsg(duration)
}

// DispatchError shows err for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""
	return m.dispatchClearMsg(duration)
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		var events []editor.KeyEvent
		if cmd := m.keys.Resolve(msg, m.editor.GetFocus()); cmd != editor.CmdNone {
			events = []editor.KeyEvent{{Command: cmd}}
		} else {
			events = convertBubbleKeys(msg)
		}

		for _, event := range events {
			if err := m.editor.HandleKey(event); err != nil {
				cmds = append(cmds, m.DispatchError(err, m.messageTimeout))
			}
		}

		if m.editor.GetState().Quit {
			return m, tea.Quit
		}

	case NotesChangedMsg:
		m.editor.Refresh()

	case MessageMsg:
		cmds = append(cmds, m.DispatchMessage(msg.Text, m.messageTimeout), m.listenForEditorUpdate())

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, m.messageTimeout), m.listenForEditorUpdate())

	case SaveMsg, CreateMsg, FocusMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case QuitMsg:
		return m, tea.Quit

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	return m, tea.Batch(cmds...)
}

// listenForEditorUpdate waits for the next editor signal. Each signal message
// re-arms the listener in Update, so exactly one listener is pending.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	editorChan := m.editor.GetUpdateSignalChan()

	return func() tea.Msg {
		for signal := range editorChan {
			switch signal := signal.(type) {
			case editor.MessageSignal:
				id, text := signal.Value()
				return MessageMsg{ID: id, Text: text}

			case editor.ErrorSignal:
				id, err := signal.Value()
				return ErrorMsg{ID: id, Error: err}

			case editor.SaveSignal:
				return SaveMsg{Path: signal.Value()}

			case editor.CreateSignal:
				return CreateMsg{Path: signal.Value()}

			case editor.FocusSignal:
				return FocusMsg{Focus: signal.Value()}

			case editor.QuitSignal:
				return QuitMsg{}
			}
		}

		return nil
	}
}

// convertBubbleKeys converts a key message into editor key events. Pasted
// text arrives as one message holding many runes and is replayed rune by rune.
func convertBubbleKeys(msg tea.KeyMsg) []editor.KeyEvent {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return []editor.KeyEvent{convertBubbleKey(msg)}
	}

	events := make([]editor.KeyEvent, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		switch r {
		case '\r':
		case '\n':
			events = append(events, editor.KeyEvent{Key: editor.KeyEnter})
		case ' ':
			events = append(events, editor.KeyEvent{Key: editor.KeySpace, Rune: ' '})
		default:
			events = append(events, editor.KeyEvent{Rune: r})
		}
	}
	return events
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyRunes:
	default:
		// Remaining key types are control chords with no editor meaning.
		key.Modifiers |= editor.ModCtrl
	}

	return key
}
