package bubble_adapter

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	editor "github.com/ionut-t/gonotes/core"
)

type mapStore map[string]string

func (s mapStore) List() ([]string, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s mapStore) Read(path string) ([]byte, error) {
	content, ok := s[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

func (s mapStore) Write(path string, content []byte) error {
	s[path] = string(content)
	return nil
}

func (s mapStore) Create(name string) (string, error) {
	if _, ok := s[name]; ok {
		return name, fmt.Errorf("create %s: %w", name, fs.ErrExist)
	}
	s[name] = ""
	return name, nil
}

func newTestModel(store mapStore) Model {
	m := New(editor.New(store))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestUpdateCreateEditSave(t *testing.T) {
	store := mapStore{"a.md": "alpha"}
	m := newTestModel(store)

	m, _ = send(m,
		runeMsg("n"),
		runeMsg("f"), runeMsg("o"), runeMsg("o"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	e := m.GetEditor()
	if e.GetFocus() != editor.EditorFocus {
		t.Fatalf("focus = %s, want editor", e.GetFocus())
	}
	if got := e.GetFileIndex().Names(); !slices.Equal(got, []string{"a.md", "foo.md"}) {
		t.Errorf("notes = %q", got)
	}

	m, _ = send(m,
		runeMsg("h"), runeMsg("i"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		runeMsg("x"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	if got := store["foo.md"]; got != "hi\n x" {
		t.Errorf("saved %q", got)
	}
	if m.GetEditor().Snapshot().Modified {
		t.Error("note still modified after save")
	}
}

func TestUpdatePasteReplaysRunes(t *testing.T) {
	store := mapStore{"a.md": ""}
	m := newTestModel(store)

	m, _ = send(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one two\r\nthree"), Paste: true},
	)

	got := m.GetEditor().GetBuffer().GetLines()
	if want := []string{"one two", "three"}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := newTestModel(mapStore{})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !m.GetEditor().GetState().Quit {
		t.Error("editor did not record quit")
	}
}

func TestUpdateNotesChanged(t *testing.T) {
	store := mapStore{"b.md": ""}
	m := newTestModel(store)

	store["a.md"] = ""
	m, _ = send(m, NotesChangedMsg{})

	if got := m.GetEditor().GetFileIndex().Names(); !slices.Equal(got, []string{"a.md", "b.md"}) {
		t.Errorf("notes = %q", got)
	}
}

func TestUpdateTransientMessage(t *testing.T) {
	m := newTestModel(mapStore{})

	m, cmd := send(m, MessageMsg{ID: editor.SavedMessage, Text: "saved a.md"})
	if cmd == nil {
		t.Fatal("expected clear and listen commands")
	}
	if !strings.Contains(m.View(), "saved a.md") {
		t.Error("message not rendered")
	}

	m, _ = send(m, clearMsg{})
	if strings.Contains(m.View(), "saved a.md") {
		t.Error("message still rendered after clear")
	}
}

func TestListenForEditorUpdate(t *testing.T) {
	store := mapStore{"a.md": ""}
	m := newTestModel(store)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlS})

	pending := len(m.GetEditor().GetUpdateSignalChan())
	if pending == 0 {
		t.Fatal("no signals published")
	}

	var msgs []tea.Msg
	for range pending {
		msgs = append(msgs, m.listenForEditorUpdate()())
	}

	var sawFocus, sawSaved, sawSave bool
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case FocusMsg:
			sawFocus = sawFocus || msg.Focus == editor.EditorFocus
		case MessageMsg:
			sawSaved = sawSaved || msg.Text == "saved a.md"
		case SaveMsg:
			sawSave = sawSave || msg.Path == "a.md"
		}
	}
	if !sawFocus || !sawSaved || !sawSave {
		t.Errorf("messages = %#v", msgs)
	}
}

func TestView(t *testing.T) {
	store := mapStore{"alpha.md": "first line\nsecond line", "beta.md": ""}
	m := newTestModel(store)

	view := m.View()
	for _, want := range []string{"Notes (2)", "alpha.md", "beta.md", "FILES", "Ready"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	for _, want := range []string{"EDITOR", "second line", "alpha.md"} {
		if !strings.Contains(view, want) {
			t.Errorf("editor view missing %q", want)
		}
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyF1})
	if view := m.View(); !strings.Contains(view, "HELP") || !strings.Contains(view, "toggle help") {
		t.Error("help overlay not rendered")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc}, runeMsg("/"), runeMsg("b"))
	view = m.View()
	if !strings.Contains(view, "SEARCH") || !strings.Contains(view, "beta.md") {
		t.Error("search popup not rendered")
	}

	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		tail  string
		want  string
	}{
		{"hello", 10, "…", "hello"},
		{"hello world", 5, "…", "hell…"},
		{"日本語", 4, "", "日本"},
		{"日本語", 5, "", "日本"},
		{"abc", 0, "…", ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width, tt.tail); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderLineFitsWidth(t *testing.T) {
	m := New(editor.New(mapStore{}))

	tests := []struct {
		name  string
		line  string
		col   int
		width int
		want  string
	}{
		{"short ascii", "hello", 1, 10, "hello"},
		{"scrolled ascii", "abcdefghij", 9, 4, "ghij"},
		{"cursor past end", "abcdef", 6, 4, "def "},
		{"wide runes at end", "日本語日本語", 6, 6, "本語 "},
		{"wide runes at start", "日本語日本語", 1, 6, "日本語"},
		{"wide runes middle", "日本語日本語", 4, 7, "語日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(m.renderLine(tt.line, tt.col, true, tt.width))
			if got != tt.want {
				t.Errorf("renderLine = %q, want %q", got, tt.want)
			}
			if w := ansi.StringWidth(got); w > tt.width {
				t.Errorf("rendered width %d exceeds %d", w, tt.width)
			}
		})
	}
}

func TestConvertBubbleKeys(t *testing.T) {
	events := convertBubbleKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b\n")})
	want := []editor.KeyEvent{
		{Rune: 'a'},
		{Key: editor.KeySpace, Rune: ' '},
		{Rune: 'b'},
		{Key: editor.KeyEnter},
	}
	if !slices.Equal(events, want) {
		t.Errorf("events = %+v", events)
	}

	if got := convertBubbleKey(tea.KeyMsg{Type: tea.KeyTab}); got.Key != editor.KeyTab || got.Rune != 0 {
		t.Errorf("tab = %+v", got)
	}
}
