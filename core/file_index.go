package core

import "slices"

// FileIndex is the ordered catalog of note paths with a selection cursor.
type FileIndex struct {
	paths    []string
	selected int
}

// NewFileIndex creates an index over paths, sorted ascending.
func NewFileIndex(paths []string) *FileIndex {
	idx := &FileIndex{}
	idx.Replace(paths)
	return idx
}

// Rescan replaces the catalog with the store's current listing. On failure the
// catalog becomes empty and the error is returned for reporting.
func (f *FileIndex) Rescan(store Store) error {
	paths, err := store.List()
	if err != nil {
		f.Replace(nil)
		return err
	}
	f.Replace(paths)
	return nil
}

// Replace swaps the catalog and clamps the selection into the new range.
func (f *FileIndex) Replace(paths []string) {
	f.paths = slices.Clone(paths)
	slices.Sort(f.paths)
	f.clamp()
}

func (f *FileIndex) clamp() {
	if f.selected >= len(f.paths) {
		f.selected = len(f.paths) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

func (f *FileIndex) Len() int {
	return len(f.paths)
}

func (f *FileIndex) Paths() []string {
	return slices.Clone(f.paths)
}

// Names returns the display names in catalog order.
func (f *FileIndex) Names() []string {
	names := make([]string, len(f.paths))
	for i, p := range f.paths {
		names[i] = DisplayName(p)
	}
	return names
}

func (f *FileIndex) Path(i int) (string, bool) {
	if i < 0 || i >= len(f.paths) {
		return "", false
	}
	return f.paths[i], true
}

func (f *FileIndex) Selected() int {
	return f.selected
}

func (f *FileIndex) SelectNext() {
	if f.selected < len(f.paths)-1 {
		f.selected++
	}
}

func (f *FileIndex) SelectPrevious() {
	if f.selected > 0 {
		f.selected--
	}
}

// Select moves the selection to i if it is in range.
func (f *FileIndex) Select(i int) bool {
	if i < 0 || i >= len(f.paths) {
		return false
	}
	f.selected = i
	return true
}

// SelectPath moves the selection to the entry whose path equals path.
func (f *FileIndex) SelectPath(path string) bool {
	i := slices.Index(f.paths, path)
	if i < 0 {
		return false
	}
	f.selected = i
	return true
}

// Current returns the selected path, or false when the catalog is empty.
func (f *FileIndex) Current() (string, bool) {
	return f.Path(f.selected)
}
