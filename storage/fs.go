// Package storage keeps notes as flat files in a single directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FS stores notes as files directly under a root directory. Paths handed out
// and accepted by FS are relative to the root.
type FS struct {
	root string // absolute path to the notes directory
	ext  string // note file extension, including the dot
}

// NewFS creates a new FS rooted at the given directory holding notes with the
// extension ext. The directory must already exist.
func NewFS(root, ext string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs, ext: ext}, nil
}

// Root returns the absolute notes directory.
func (f *FS) Root() string {
	return f.root
}

// Ext returns the note file extension.
func (f *FS) Ext() string {
	return f.ext
}

// safePath resolves a relative path against the root and rejects any result
// that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("storage: empty path")
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes notes root: %s", rel)
	}
	return abs, nil
}

// isNote reports whether a directory entry name is a note file.
func (f *FS) isNote(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, f.ext)
}

// List returns the note files directly under the root, sorted by name.
// Subdirectories are not descended into.
func (f *FS) List() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !f.isNote(entry.Name()) {
			continue
		}
		out = append(out, entry.Name())
	}
	slices.Sort(out)
	return out, nil
}

// Read returns the raw bytes of a note.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *FS) Write(path string, content []byte) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	tmp, err := os.CreateTemp(dir, ".gonotes-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("storage: chmod temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Create makes a new empty note. An existing note is never truncated: the
// path is returned together with an error wrapping fs.ErrExist.
func (f *FS) Create(fileName string) (string, error) {
	if filepath.Base(fileName) != fileName {
		return "", fmt.Errorf("storage: note name must not contain a directory: %s", fileName)
	}
	abs, err := f.safePath(fileName)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fileName, fmt.Errorf("storage: create %s: %w", fileName, err)
	}
	if err := file.Close(); err != nil {
		return fileName, fmt.Errorf("storage: close %s: %w", fileName, err)
	}
	return fileName, nil
}
