package core

import (
	"fmt"
	"strings"
)

// --- KeyCode, KeyModifiers, Command, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// Command is an abstract action bound to a key chord by the presentation layer.
// The chord itself is not part of the core; only the resolved command is.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleHelp
	CmdSwitchPane
	CmdNewNote
	CmdSearch
	CmdSave
	CmdCopy
	CmdPaste
)

var commandNames = map[Command]string{
	CmdQuit:       "quit",
	CmdToggleHelp: "help",
	CmdSwitchPane: "switch-pane",
	CmdNewNote:    "new-note",
	CmdSearch:     "search",
	CmdSave:       "save",
	CmdCopy:       "copy",
	CmdPaste:      "paste",
}

// String returns the configuration name of the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand resolves a configuration name such as "save" to its Command.
func ParseCommand(name string) (Command, bool) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}
	return CmdNone, false
}

// CommandNames lists every bindable command name.
func CommandNames() []string {
	names := make([]string, 0, len(commandNames))
	for cmd := CmdQuit; cmd <= CmdPaste; cmd++ {
		names = append(names, commandNames[cmd])
	}
	return names
}

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
	Command   Command
}

// IsGlobal reports whether the event must preempt every focus handler.
func (k KeyEvent) IsGlobal() bool {
	return k.Command == CmdQuit || k.Command == CmdToggleHelp
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	if k.Command != CmdNone {
		return "Cmd(" + k.Command.String() + ")"
	}

	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyTab:
			parts = append(parts, "Tab")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeySpace:
			parts = append(parts, "Space")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyHome:
			parts = append(parts, "Home")
		case KeyEnd:
			parts = append(parts, "End")
		case KeyUnknown:
			parts = append(parts, "Unknown")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}

	return strings.Join(parts, "+")
}
