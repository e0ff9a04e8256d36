package core

import "log/slog"

var (
	ReadyMessage   = "Ready"
	SavedMessage   = "saved"
	CreatedMessage = "created"
	OpenedMessage  = "opened"
	CopiedMessage  = "note copied to clipboard"
	PastedMessage  = "pasted from clipboard"
)

// DispatchMessage publishes a status message. With one argument the id is
// also the text.
func (e *editor) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		e.logger.Warn("signal channel is full, dropping message", slog.String("message", value))
	}
}
