package bubble_adapter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/gonotes/core"
	"github.com/rivo/uniseg"
)

const (
	minPaneWidth  = 12
	popupWidth    = 40
	searchResults = 8
)

// paneBodyHeight is the number of content rows inside a pane: the terminal
// minus status and help lines, pane borders and the pane title.
func (m *Model) paneBodyHeight() int {
	return max(m.height-5, 1)
}

func (m *Model) paneWidths() (files, notes int) {
	files = max(m.width*m.filesWidth/100, minPaneWidth)
	notes = max(m.width-files, minPaneWidth)
	return files, notes
}

func (m Model) View() string {
	snap := m.editor.Snapshot()

	filesWidth, notesWidth := m.paneWidths()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.filesPane(snap, filesWidth),
		m.notePane(snap, notesWidth),
	)

	bodyHeight := m.paneBodyHeight() + 3
	switch snap.Focus {
	case editor.NewNoteFocus:
		body = overlay(body, m.newNotePopup(snap), m.width, bodyHeight)
	case editor.SearchFocus:
		body = overlay(body, m.searchPopup(snap), m.width, bodyHeight)
	case editor.HelpFocus:
		body = overlay(body, m.helpPopup(), m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.getStatusLine(snap),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

func (m Model) pane(title string, lines []string, width int, active bool) string {
	style := m.theme.PaneStyle
	if active {
		style = m.theme.ActivePaneStyle
	}
	inner := width - style.GetHorizontalFrameSize()

	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, m.theme.TitleStyle.Render(truncate(title, inner, "…")))
	rows = append(rows, lines...)

	return style.
		Width(inner).
		Height(m.paneBodyHeight() + 1).
		MaxHeight(m.paneBodyHeight() + 3).
		Render(strings.Join(rows, "\n"))
}

func (m Model) filesPane(snap editor.Snapshot, width int) string {
	inner := width - m.theme.PaneStyle.GetHorizontalFrameSize()
	height := m.paneBodyHeight()
	active := snap.Focus == editor.FilesFocus

	if len(snap.Notes) == 0 {
		empty := m.theme.PlaceholderStyle.Render(truncate("No notes yet", inner, "…"))
		return m.pane("Notes", []string{empty}, width, active)
	}

	start := max(snap.Selected-height+1, 0)
	end := min(start+height, len(snap.Notes))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := truncate(snap.Notes[i], inner-2, "…")
		if i == snap.Selected {
			line := "> " + name
			if active {
				line = m.theme.SelectedStyle.Width(inner).Render(line)
			}
			lines = append(lines, line)
			continue
		}
		lines = append(lines, "  "+name)
	}

	return m.pane(fmt.Sprintf("Notes (%d)", len(snap.Notes)), lines, width, active)
}

func (m Model) notePane(snap editor.Snapshot, width int) string {
	inner := width - m.theme.PaneStyle.GetHorizontalFrameSize()
	active := snap.Focus == editor.EditorFocus

	if snap.OpenNote == "" {
		hint := m.theme.PlaceholderStyle.Render(truncate("Select a note and press enter", inner, "…"))
		return m.pane("-", []string{hint}, width, active)
	}

	title := snap.OpenNote
	if snap.Modified {
		title += " [+]"
	}

	cursor := snap.ViewCursor()
	lines := make([]string, 0, len(snap.Lines))
	for i, line := range snap.Lines {
		lines = append(lines, m.renderLine(line, cursor.Col, active && i == cursor.Row, inner))
	}

	return m.pane(title, lines, width, active)
}

// renderLine clips line to width cells. On the cursor line the view scrolls
// horizontally so the cursor cell stays visible.
func (m Model) renderLine(line string, col int, withCursor bool, width int) string {
	runes := []rune(strings.ReplaceAll(line, "\t", " "))
	if !withCursor {
		return truncate(string(runes), width, "")
	}

	col = min(max(col, 0), len(runes))
	at, after := " ", ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}
	atWidth := max(uniseg.StringWidth(at), 1)

	// Drop leading runes until the text before the cursor and the cursor
	// cell fit.
	start := 0
	for start < col && uniseg.StringWidth(string(runes[start:col]))+atWidth > width {
		start++
	}
	before := string(runes[start:col])

	rest := width - uniseg.StringWidth(before) - atWidth
	return before + m.theme.CursorStyle.Render(at) + truncate(after, rest, "")
}

func (m Model) newNotePopup(snap editor.Snapshot) string {
	inner := popupWidth - m.theme.PopupStyle.GetHorizontalFrameSize()
	input := truncate("> "+snap.Input, inner-1, "") + m.theme.CursorStyle.Render(" ")

	return m.theme.PopupStyle.Width(inner).Render(strings.Join([]string{
		m.theme.TitleStyle.Render("New note"),
		input,
		m.theme.PlaceholderStyle.Render("enter create · esc cancel"),
	}, "\n"))
}

func (m Model) searchPopup(snap editor.Snapshot) string {
	inner := popupWidth - m.theme.PopupStyle.GetHorizontalFrameSize()
	rows := []string{
		m.theme.TitleStyle.Render("Search"),
		truncate("/ "+snap.Input, inner-1, "") + m.theme.CursorStyle.Render(" "),
	}

	if len(snap.Results) == 0 {
		rows = append(rows, m.theme.PlaceholderStyle.Render("no matches"))
	}

	start := max(snap.ResultSelected-searchResults+1, 0)
	end := min(start+searchResults, len(snap.Results))
	for i := start; i < end; i++ {
		name := truncate(snap.Notes[snap.Results[i]], inner-2, "…")
		if i == snap.ResultSelected {
			rows = append(rows, m.theme.SelectedStyle.Width(inner).Render("> "+name))
			continue
		}
		rows = append(rows, "  "+name)
	}

	return m.theme.PopupStyle.Width(inner).Render(strings.Join(rows, "\n"))
}

func (m Model) helpPopup() string {
	h := m.help
	h.ShowAll = true
	h.Width = max(m.width-4, popupWidth)

	return m.theme.PopupStyle.Render(strings.Join([]string{
		m.theme.TitleStyle.Render("Help"),
		h.View(m.keys),
		"",
		m.theme.PlaceholderStyle.Render("esc close"),
	}, "\n"))
}

func (m Model) focusBadge(focus editor.Focus) string {
	switch focus {
	case editor.FilesFocus:
		return m.theme.FilesFocusStyle.Render(" FILES ")
	case editor.EditorFocus:
		return m.theme.EditorFocusStyle.Render(" EDITOR ")
	case editor.HelpFocus:
		return m.theme.HelpFocusStyle.Render(" HELP ")
	case editor.NewNoteFocus:
		return m.theme.PopupFocusStyle.Render(" NEW NOTE ")
	case editor.SearchFocus:
		return m.theme.PopupFocusStyle.Render(" SEARCH ")
	}
	return ""
}

func (m Model) getStatusLine(snap editor.Snapshot) string {
	statusLine := m.focusBadge(snap.Focus)

	status := " " + snap.Status
	style := m.theme.StatusLineStyle
	switch {
	case m.err != nil:
		status = " " + m.err.Error()
		style = m.theme.ErrorStyle.Background(m.theme.StatusLineStyle.GetBackground())
	case m.message != "":
		status = " " + m.message
		style = m.theme.MessageStyle.Background(m.theme.StatusLineStyle.GetBackground())
	}

	name := snap.OpenNote
	if name == "" {
		name = "-"
	}
	modified := ""
	if snap.Modified {
		modified = " [+]"
	}
	cursorInfo := fmt.Sprintf("%s%s  %d/%d ", name, modified, snap.Cursor.Row+1, snap.Cursor.Col+1)

	room := m.width - lipgloss.Width(statusLine) - uniseg.StringWidth(cursorInfo) - 1
	status = truncate(status, max(room, 0), "…")
	gap := strings.Repeat(" ", max(0, room-uniseg.StringWidth(status)+1))

	return statusLine + style.Render(status) + m.theme.StatusLineStyle.Render(gap+cursorInfo)
}

// truncate clips s to at most width terminal cells, ending with tail when
// something was cut.
func truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	limit := width - uniseg.StringWidth(tail)
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > limit {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString(tail)
	return b.String()
}
