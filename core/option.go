package core

import "log/slog"

// Option configures an editor created by New.
type Option func(*editor)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClipboard enables copy and paste through c.
func WithClipboard(c Clipboard) Option {
	return func(e *editor) {
		e.clipboard = c
	}
}

// WithExtension sets the extension appended to new note names.
func WithExtension(ext string) Option {
	return func(e *editor) {
		if ext != "" {
			e.extension = ext
		}
	}
}

// WithViewportHeight sets the initial number of visible buffer lines.
func WithViewportHeight(height int) Option {
	return func(e *editor) {
		e.state.ViewportHeight = max(height, 1)
	}
}
