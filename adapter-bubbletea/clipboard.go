package bubble_adapter

import "github.com/atotto/clipboard"

// SystemClipboard is the OS clipboard as an editor.Clipboard.
type SystemClipboard struct{}

func (c *SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// ClipboardAvailable reports whether a clipboard backend was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
