package core

import (
	"errors"
	"slices"
	"testing"
)

func TestFilter(t *testing.T) {
	names := []string{"a.md", "b.md", "c.md"}

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{0, 1, 2}},
		{"b", []int{1}},
		{".md", []int{0, 1, 2}},
		{"zzz", []int{}},
		{"B", []int{}}, // case-sensitive
	}

	for _, tt := range tests {
		if got := Filter(names, tt.query); !slices.Equal(got, tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterNarrowsAsQueryGrows(t *testing.T) {
	names := []string{"alpha.md", "alphabet.md", "beta.md", "gamma.md"}
	query := ""
	prev := Filter(names, query)

	for _, r := range "alphab" {
		query += string(r)
		got := Filter(names, query)
		for _, i := range got {
			if !slices.Contains(prev, i) {
				t.Fatalf("query %q matched %d which %q did not", query, i, query[:len(query)-1])
			}
		}
		prev = got
	}
	if !slices.Equal(prev, []int{1}) {
		t.Errorf("final results = %v", prev)
	}
}

func TestSearchFilterSelection(t *testing.T) {
	idx := NewFileIndex([]string{"a.md", "ab.md", "abc.md", "b.md"})
	s := NewSearchFilter()
	s.Reset(idx)

	if got := s.Results(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("Results() = %v", got)
	}

	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	if s.Selected() != 3 {
		t.Errorf("Selected() = %d, want 3", s.Selected())
	}

	// Narrowing clamps the selection into the shorter result set.
	s.SetQuery(idx, "ab")
	if got := s.Results(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Results() = %v", got)
	}
	if s.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", s.Selected())
	}

	i, err := s.Confirm()
	if err != nil || i != 2 {
		t.Errorf("Confirm() = %d, %v; want 2", i, err)
	}

	s.SelectPrevious()
	s.SelectPrevious()
	if s.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", s.Selected())
	}
}

func TestSearchFilterConfirmEmpty(t *testing.T) {
	idx := NewFileIndex([]string{"a.md"})
	s := NewSearchFilter()
	s.SetQuery(idx, "nothing")

	if _, err := s.Confirm(); !errors.Is(err, ErrNoResults) {
		t.Errorf("Confirm() err = %v, want ErrNoResults", err)
	}
	if s.Selected() != 0 {
		t.Errorf("Selected() = %d", s.Selected())
	}
	s.SelectNext()
	if s.Selected() != 0 {
		t.Errorf("SelectNext on empty results moved to %d", s.Selected())
	}
}
