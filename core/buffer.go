package core

import (
	"fmt"
	"strings"
)

// Buffer represents the text of the open note as a sequence of lines (Using Runes).
// A buffer is never empty: an empty document is a single empty line.
type Buffer interface {
	// Content access
	GetLines() []string            // Get lines as strings
	LineRuneCount(lineNum int) int // Get rune count for a line
	LineCount() int                // Get number of lines
	GetCurrentContent() string     // Serialize lines joined by "\n"
	SetContent(content string)     // Replace all lines, reset cursor and scroll
	IsModified() bool              // Current content differs from saved content
	SaveContent()                  // Mark current content as saved
	IsEmpty() bool                 // Single empty line

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)
	MoveCursor(dir Direction) error

	// Modification
	InsertRune(r rune) error // Insert at the cursor and advance
	InsertText(text string)  // Insert text at the cursor, line breaks split the line
	SplitLine()              // Enter
	Backspace() error        // Delete backward, joining lines at column 0

	// Scroll window
	ScrollTop() int
	ScrollIntoView(height int)
	VisibleWindow(height int) []string
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	cursor       Cursor
	scroll       int
	savedContent string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines: [][]rune{{}}, // Start with one empty line
	}
}

// NewBufferFromString creates a buffer holding content, marked as saved.
func NewBufferFromString(content string) Buffer {
	b := &textBuffer{}
	b.SetContent(content)
	return b
}

// splitLines breaks text on "\n" (or "\r\n"). Every break starts a new line, so
// joining the result with "\n" gives back the text.
func splitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func (b *textBuffer) SetContent(content string) {
	parts := splitLines(content)
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}

	b.cursor = Cursor{}
	b.scroll = 0
	b.SaveContent()
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

func (b *textBuffer) IsModified() bool {
	return b.savedContent != b.GetCurrentContent()
}

func (b *textBuffer) SaveContent() {
	b.savedContent = b.GetCurrentContent()
}

func (b *textBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor sets the cursor position, validating and clamping it.
func (b *textBuffer) SetCursor(cursor Cursor) {
	if cursor.Position.Row < 0 {
		cursor.Position.Row = 0
	} else if cursor.Position.Row >= len(b.lines) {
		cursor.Position.Row = len(b.lines) - 1
	}

	cursor.clampCol(b)
	b.cursor = cursor
}

func (b *textBuffer) MoveCursor(dir Direction) error {
	cursor := b.cursor
	if err := cursor.Move(b, dir); err != nil {
		return err
	}
	b.cursor = cursor
	return nil
}

// --- Buffer Modification ---

func (b *textBuffer) InsertRune(r rune) error {
	row, col := b.cursor.Position.Row, b.cursor.Position.Col
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return fmt.Errorf("InsertRune: %w: col %d out of bounds [0, %d]", ErrInvalidPosition, col, len(line))
	}

	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, r)
	newLine = append(newLine, line[col:]...)
	b.lines[row] = newLine
	b.cursor.Position.Col++

	return nil
}

func (b *textBuffer) InsertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, r := range text {
		switch r {
		case '\n':
			b.SplitLine()
		case '\r':
		default:
			_ = b.InsertRune(r)
		}
	}
}

// SplitLine moves the text after the cursor to a new line below and places the
// cursor at its start.
func (b *textBuffer) SplitLine() {
	row, col := b.cursor.Position.Row, b.cursor.Position.Col
	line := b.lines[row]

	head := make([]rune, col)
	copy(head, line[:col])
	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, head, tail)
	lines = append(lines, b.lines[row+1:]...)
	b.lines = lines

	b.cursor.Position = Position{Row: row + 1, Col: 0}
}

// Backspace deletes the character before the cursor. At column 0 the current
// line is joined onto the previous one.
func (b *textBuffer) Backspace() error {
	row, col := b.cursor.Position.Row, b.cursor.Position.Col

	if col > 0 {
		line := b.lines[row]
		newLine := make([]rune, 0, len(line)-1)
		newLine = append(newLine, line[:col-1]...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
		b.cursor.Position.Col--
		return nil
	}

	if row == 0 {
		return ErrStartOfBuffer
	}

	prevLen := len(b.lines[row-1])
	joined := make([]rune, 0, prevLen+len(b.lines[row]))
	joined = append(joined, b.lines[row-1]...)
	joined = append(joined, b.lines[row]...)
	b.lines[row-1] = joined
	b.lines = append(b.lines[:row], b.lines[row+1:]...)

	b.cursor.Position = Position{Row: row - 1, Col: prevLen}
	if b.scroll > b.cursor.Position.Row {
		b.scroll = b.cursor.Position.Row
	}

	return nil
}

// --- Scroll window ---

func (b *textBuffer) ScrollTop() int {
	return b.scroll
}

// ScrollIntoView moves the scroll offset by the minimal amount that keeps the
// cursor row inside [scroll, scroll+height) without scrolling past the end.
func (b *textBuffer) ScrollIntoView(height int) {
	height = max(height, 1)
	row := b.cursor.Position.Row

	if row < b.scroll {
		b.scroll = row
	} else if row >= b.scroll+height {
		b.scroll = row - height + 1
	}

	b.scroll = min(b.scroll, max(0, len(b.lines)-height))
	b.scroll = max(b.scroll, 0)
}

// VisibleWindow returns the lines in [scroll, scroll+height) after bringing the
// cursor into view.
func (b *textBuffer) VisibleWindow(height int) []string {
	b.ScrollIntoView(height)
	height = max(height, 1)

	end := min(b.scroll+height, len(b.lines))
	window := make([]string, 0, end-b.scroll)
	for _, line := range b.lines[b.scroll:end] {
		window = append(window, string(line))
	}
	return window
}
