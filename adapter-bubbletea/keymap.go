package bubble_adapter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/ionut-t/gonotes/core"
)

// KeyMap binds key chords to editor commands. Which bindings are live depends
// on the focused pane: popups only honour the global ones.
type KeyMap struct {
	// Global, every focus
	Quit key.Binding
	Help key.Binding

	// Files and Editor
	SwitchPane key.Binding
	Search     key.Binding
	Save       key.Binding

	// Files only
	NewNote key.Binding

	// Editor only
	Copy  key.Binding
	Paste key.Binding

	// Single-key aliases while the file list has focus
	FilesQuit    key.Binding
	FilesHelp    key.Binding
	FilesNewNote key.Binding
	FilesSearch  key.Binding

	// Fixed keys handled by the editor itself, listed for the help view
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+g"),
			key.WithHelp("f1", "toggle help"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "search notes"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		NewNote: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new note"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy note"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		FilesQuit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		FilesHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		FilesNewNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		FilesSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// binding returns the configurable binding for cmd.
func (k *KeyMap) binding(cmd editor.Command) *key.Binding {
	switch cmd {
	case editor.CmdQuit:
		return &k.Quit
	case editor.CmdToggleHelp:
		return &k.Help
	case editor.CmdSwitchPane:
		return &k.SwitchPane
	case editor.CmdNewNote:
		return &k.NewNote
	case editor.CmdSearch:
		return &k.Search
	case editor.CmdSave:
		return &k.Save
	case editor.CmdCopy:
		return &k.Copy
	case editor.CmdPaste:
		return &k.Paste
	}
	return nil
}

// ApplyOverrides rebinds commands by name, e.g. {"save": {"ctrl+w"}}. The
// single-key aliases of the file list are not affected.
func (k *KeyMap) ApplyOverrides(overrides map[string][]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd, ok := editor.ParseCommand(name)
		if !ok {
			return fmt.Errorf("keymap: unknown command %q", name)
		}
		keys := overrides[name]
		if len(keys) == 0 {
			return fmt.Errorf("keymap: no keys for command %q", name)
		}

		b := k.binding(cmd)
		desc := b.Help().Desc
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), desc)
	}
	return nil
}

// Resolve maps a key message to the command it triggers in focus, or CmdNone
// when the key should reach the editor as plain input.
func (k KeyMap) Resolve(msg tea.KeyMsg, focus editor.Focus) editor.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return editor.CmdQuit
	case key.Matches(msg, k.Help):
		return editor.CmdToggleHelp
	}

	switch focus {
	case editor.FilesFocus:
		switch {
		case key.Matches(msg, k.FilesQuit):
			return editor.CmdQuit
		case key.Matches(msg, k.FilesHelp):
			return editor.CmdToggleHelp
		case key.Matches(msg, k.NewNote, k.FilesNewNote):
			return editor.CmdNewNote
		case key.Matches(msg, k.Search, k.FilesSearch):
			return editor.CmdSearch
		case key.Matches(msg, k.SwitchPane):
			return editor.CmdSwitchPane
		case key.Matches(msg, k.Save):
			return editor.CmdSave
		}

	case editor.EditorFocus:
		switch {
		case key.Matches(msg, k.SwitchPane):
			return editor.CmdSwitchPane
		case key.Matches(msg, k.Search):
			return editor.CmdSearch
		case key.Matches(msg, k.Save):
			return editor.CmdSave
		case key.Matches(msg, k.Copy):
			return editor.CmdCopy
		case key.Matches(msg, k.Paste):
			return editor.CmdPaste
		}

	case editor.HelpFocus:
		if key.Matches(msg, k.FilesHelp) {
			return editor.CmdToggleHelp
		}
	}

	return editor.CmdNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.NewNote, k.Search, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Cancel},
		{k.SwitchPane, k.NewNote, k.Search, k.Save},
		{k.Copy, k.Paste, k.Help, k.Quit},
		{k.FilesNewNote, k.FilesSearch, k.FilesHelp, k.FilesQuit},
	}
}
