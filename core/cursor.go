package core

// Cursor represents the current position for editing operations
type Cursor struct {
	Position Position // Current position (row, column)
}

// Direction is a single-step cursor movement.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// clampCol keeps the column within [0, len(line)] of the current row.
func (c *Cursor) clampCol(buffer Buffer) {
	lineLen := buffer.LineRuneCount(c.Position.Row)
	if c.Position.Col > lineLen {
		c.Position.Col = lineLen
	}
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
}

// MoveLeft moves one character left. It does not wrap to the previous line.
func (c *Cursor) MoveLeft(buffer Buffer) error {
	if c.Position.Col <= 0 {
		return ErrStartOfLine
	}
	c.Position.Col--
	c.clampCol(buffer)
	return nil
}

// MoveRight moves one character right, at most to the position after the last
// character. It does not wrap to the next line.
func (c *Cursor) MoveRight(buffer Buffer) error {
	if c.Position.Col >= buffer.LineRuneCount(c.Position.Row) {
		return ErrEndOfLine
	}
	c.Position.Col++
	return nil
}

// MoveUp moves one line up, clamping the column to the new line length.
func (c *Cursor) MoveUp(buffer Buffer) error {
	if c.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	c.Position.Row--
	c.clampCol(buffer)
	return nil
}

// MoveDown moves one line down, clamping the column to the new line length.
func (c *Cursor) MoveDown(buffer Buffer) error {
	if c.Position.Row >= buffer.LineCount()-1 {
		return ErrEndOfBuffer
	}
	c.Position.Row++
	c.clampCol(buffer)
	return nil
}

func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
}

func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
}

// Move dispatches a single step in the given direction.
func (c *Cursor) Move(buffer Buffer, dir Direction) error {
	switch dir {
	case DirLeft:
		return c.MoveLeft(buffer)
	case DirRight:
		return c.MoveRight(buffer)
	case DirUp:
		return c.MoveUp(buffer)
	case DirDown:
		return c.MoveDown(buffer)
	}
	return ErrInvalidPosition
}
