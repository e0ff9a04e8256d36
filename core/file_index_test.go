package core

import (
	"errors"
	"slices"
	"testing"
)

func TestFileIndexSortsAndNavigates(t *testing.T) {
	idx := NewFileIndex([]string{"/n/c.md", "/n/a.md", "/n/b.md"})

	if got := idx.Names(); !slices.Equal(got, []string{"a.md", "b.md", "c.md"}) {
		t.Fatalf("Names() = %q", got)
	}

	idx.SelectPrevious()
	if idx.Selected() != 0 {
		t.Errorf("SelectPrevious at 0 moved to %d", idx.Selected())
	}

	for range 5 {
		idx.SelectNext()
	}
	if idx.Selected() != 2 {
		t.Errorf("SelectNext saturated at %d, want 2", idx.Selected())
	}

	path, ok := idx.Current()
	if !ok || path != "/n/c.md" {
		t.Errorf("Current() = %q, %v", path, ok)
	}
}

func TestFileIndexEmpty(t *testing.T) {
	idx := NewFileIndex(nil)
	idx.SelectNext()
	idx.SelectPrevious()

	if idx.Selected() != 0 {
		t.Errorf("Selected() = %d", idx.Selected())
	}
	if _, ok := idx.Current(); ok {
		t.Error("Current() on empty index reported a selection")
	}
	if idx.Select(0) {
		t.Error("Select(0) on empty index succeeded")
	}
}

func TestFileIndexRescanClampsSelection(t *testing.T) {
	store := newMemStore("a.md", "b.md", "c.md")
	idx := NewFileIndex(nil)
	if err := idx.Rescan(store); err != nil {
		t.Fatalf("Rescan: %v", err)
	}
	idx.Select(2)

	store.remove("c.md")
	store.remove("b.md")
	if err := idx.Rescan(store); err != nil {
		t.Fatalf("Rescan: %v", err)
	}
	if idx.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", idx.Selected())
	}
}

func TestFileIndexRescanFailureEmpties(t *testing.T) {
	store := newMemStore("a.md")
	idx := NewFileIndex(nil)
	_ = idx.Rescan(store)

	store.listErr = errors.New("directory gone")
	if err := idx.Rescan(store); err == nil {
		t.Fatal("expected error")
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d after failed rescan", idx.Len())
	}
}

func TestFileIndexSelectPath(t *testing.T) {
	idx := NewFileIndex([]string{"a.md", "foo.md", "z.md"})
	if !idx.SelectPath("foo.md") || idx.Selected() != 1 {
		t.Errorf("SelectPath(foo.md) selected %d", idx.Selected())
	}
	if idx.SelectPath("missing.md") {
		t.Error("SelectPath of a missing path succeeded")
	}
	if idx.Selected() != 1 {
		t.Errorf("failed SelectPath moved the selection to %d", idx.Selected())
	}
}

func TestNoteFileName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"foo", "foo.md", false},
		{"foo.md", "foo.md", false},
		{"  spaced  ", "spaced.md", false},
		{"", "", true},
		{"   ", "", true},
		{"..", "", true},
		{"a/b", "", true},
		{`a\b`, "", true},
	}

	for _, tt := range tests {
		got, err := NoteFileName(tt.name, ".md")
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidNoteName) {
				t.Errorf("NoteFileName(%q) err = %v, want ErrInvalidNoteName", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NoteFileName(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}
}
