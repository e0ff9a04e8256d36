package bubble_adapter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/ionut-t/gonotes/core"
)

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResolve(t *testing.T) {
	keys := DefaultKeyMap()
	allFocus := []editor.Focus{
		editor.FilesFocus, editor.EditorFocus, editor.HelpFocus, editor.NewNoteFocus, editor.SearchFocus,
	}

	for _, focus := range allFocus {
		if got := keys.Resolve(tea.KeyMsg{Type: tea.KeyCtrlQ}, focus); got != editor.CmdQuit {
			t.Errorf("ctrl+q in %s = %s, want quit", focus, got)
		}
		if got := keys.Resolve(tea.KeyMsg{Type: tea.KeyF1}, focus); got != editor.CmdToggleHelp {
			t.Errorf("f1 in %s = %s, want help", focus, got)
		}
	}

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		focus editor.Focus
		want  editor.Command
	}{
		{"q quits from files", runeMsg("q"), editor.FilesFocus, editor.CmdQuit},
		{"q types in editor", runeMsg("q"), editor.EditorFocus, editor.CmdNone},
		{"n types in new-note popup", runeMsg("n"), editor.NewNoteFocus, editor.CmdNone},
		{"n creates from files", runeMsg("n"), editor.FilesFocus, editor.CmdNewNote},
		{"slash searches from files", runeMsg("/"), editor.FilesFocus, editor.CmdSearch},
		{"slash types in search", runeMsg("/"), editor.SearchFocus, editor.CmdNone},
		{"question mark closes help", runeMsg("?"), editor.HelpFocus, editor.CmdToggleHelp},
		{"tab in editor", tea.KeyMsg{Type: tea.KeyTab}, editor.EditorFocus, editor.CmdSwitchPane},
		{"tab in popup", tea.KeyMsg{Type: tea.KeyTab}, editor.SearchFocus, editor.CmdNone},
		{"save from files", tea.KeyMsg{Type: tea.KeyCtrlS}, editor.FilesFocus, editor.CmdSave},
		{"save from editor", tea.KeyMsg{Type: tea.KeyCtrlS}, editor.EditorFocus, editor.CmdSave},
		{"no save in popup", tea.KeyMsg{Type: tea.KeyCtrlS}, editor.NewNoteFocus, editor.CmdNone},
		{"search from editor", tea.KeyMsg{Type: tea.KeyCtrlF}, editor.EditorFocus, editor.CmdSearch},
		{"copy in editor", tea.KeyMsg{Type: tea.KeyCtrlY}, editor.EditorFocus, editor.CmdCopy},
		{"no copy in files", tea.KeyMsg{Type: tea.KeyCtrlY}, editor.FilesFocus, editor.CmdNone},
		{"enter is input", tea.KeyMsg{Type: tea.KeyEnter}, editor.FilesFocus, editor.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Resolve(tt.msg, tt.focus); got != tt.want {
				t.Errorf("Resolve(%s, %s) = %s, want %s", tt.msg, tt.focus, got, tt.want)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	keys := DefaultKeyMap()
	err := keys.ApplyOverrides(map[string][]string{
		"save": {"ctrl+w"},
		"quit": {"ctrl+x"},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if got := keys.Resolve(tea.KeyMsg{Type: tea.KeyCtrlW}, editor.EditorFocus); got != editor.CmdSave {
		t.Errorf("ctrl+w = %s, want save", got)
	}
	if got := keys.Resolve(tea.KeyMsg{Type: tea.KeyCtrlS}, editor.EditorFocus); got != editor.CmdNone {
		t.Errorf("ctrl+s still bound to %s", got)
	}
	if got := keys.Resolve(tea.KeyMsg{Type: tea.KeyCtrlX}, editor.SearchFocus); got != editor.CmdQuit {
		t.Errorf("ctrl+x = %s, want quit", got)
	}
	if got := keys.Save.Help(); got.Key != "ctrl+w" || got.Desc != "save" {
		t.Errorf("help = %+v", got)
	}
}

func TestApplyOverridesRejectsUnknown(t *testing.T) {
	keys := DefaultKeyMap()
	if err := keys.ApplyOverrides(map[string][]string{"explode": {"x"}}); err == nil {
		t.Error("expected error for unknown command")
	}
	if err := keys.ApplyOverrides(map[string][]string{"save": nil}); err == nil {
		t.Error("expected error for empty key list")
	}
}
