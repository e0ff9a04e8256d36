package core

import "strings"

// Filter returns the indices of names containing query, in order. The empty
// query matches everything.
func Filter(names []string, query string) []int {
	results := make([]int, 0, len(names))
	for i, name := range names {
		if strings.Contains(name, query) {
			results = append(results, i)
		}
	}
	return results
}

// SearchFilter is a live substring filter over a FileIndex with its own
// selection cursor into the results.
type SearchFilter struct {
	query    string
	results  []int
	selected int
}

func NewSearchFilter() *SearchFilter {
	return &SearchFilter{}
}

// Reset clears the query, which yields the whole index in order.
func (s *SearchFilter) Reset(index *FileIndex) {
	s.selected = 0
	s.SetQuery(index, "")
}

// SetQuery recomputes the results for q and clamps the selection.
func (s *SearchFilter) SetQuery(index *FileIndex, q string) {
	s.query = q
	s.results = Filter(index.Names(), q)
	s.clamp()
}

// Refresh recomputes the results for the current query, e.g. after a rescan.
func (s *SearchFilter) Refresh(index *FileIndex) {
	s.SetQuery(index, s.query)
}

func (s *SearchFilter) clamp() {
	s.selected = min(s.selected, len(s.results)-1)
	s.selected = max(s.selected, 0)
}

func (s *SearchFilter) Query() string {
	return s.query
}

func (s *SearchFilter) Results() []int {
	return append([]int(nil), s.results...)
}

func (s *SearchFilter) Selected() int {
	return s.selected
}

func (s *SearchFilter) SelectNext() {
	if s.selected < len(s.results)-1 {
		s.selected++
	}
}

func (s *SearchFilter) SelectPrevious() {
	if s.selected > 0 {
		s.selected--
	}
}

// Confirm maps the selected result back to its FileIndex position.
func (s *SearchFilter) Confirm() (int, error) {
	if len(s.results) == 0 {
		return 0, ErrNoResults
	}
	return s.results[s.selected], nil
}
