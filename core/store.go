package core

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is the note file extension used when none is configured.
const DefaultExtension = ".md"

// Store is the notes directory as seen by the editor.
type Store interface {
	// List returns the paths of every note, sorted ascending.
	List() ([]string, error)
	// Read returns the content of the note at path.
	Read(path string) ([]byte, error)
	// Write replaces the content of the note at path.
	Write(path string, content []byte) error
	// Create makes an empty note named fileName and returns its path. If the
	// note already exists the path is returned with an error wrapping fs.ErrExist.
	Create(fileName string) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// DisplayName is the final path component of a note path.
func DisplayName(path string) string {
	return filepath.Base(path)
}

// NoteFileName turns a typed note name into a file name carrying ext.
func NoteFileName(name, ext string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidNoteName
	}
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name, nil
}
