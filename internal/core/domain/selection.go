package domain

import "sort"

// Selection tracks which result rows the user is hovering over and has
// marked. It has no terminal state: Clear empties the marked set and
// the machine keeps running for the lifetime of the session.
//
// Clearing never touches the hover path; hover follows the pointer and
// only Unhover releases it.
type Selection struct {
	hover  string
	marked map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{marked: make(map[string]struct{})}
}

// Hover records the path under the pointer.
func (s *Selection) Hover(path string) {
	s.hover = path
}

// Unhover releases the hover path on pointer-leave.
func (s *Selection) Unhover() {
	s.hover = ""
}

// HoverPath returns the hovered path, or false when nothing is hovered.
func (s *Selection) HoverPath() (string, bool) {
	return s.hover, s.hover != ""
}

// Select marks a path.
func (s *Selection) Select(path string) {
	if path == "" {
		return
	}
	s.marked[path] = struct{}{}
}

// Deselect unmarks a path.
func (s *Selection) Deselect(path string) {
	delete(s.marked, path)
}

// Toggle flips a path's marked state.
func (s *Selection) Toggle(path string) {
	if path == "" {
		return
	}
	if _, ok := s.marked[path]; ok {
		delete(s.marked, path)
		return
	}
	s.marked[path] = struct{}{}
}

// IsSelected reports whether a path is marked.
func (s *Selection) IsSelected(path string) bool {
	_, ok := s.marked[path]
	return ok
}

// Selected returns the marked paths in sorted order.
func (s *Selection) Selected() []string {
	paths := make([]string, 0, len(s.marked))
	for p := range s.marked {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Count returns the number of marked paths.
func (s *Selection) Count() int {
	return len(s.marked)
}

// Active reports whether any hover or marked state exists.
func (s *Selection) Active() bool {
	return s.hover != "" || len(s.marked) > 0
}

// Clear empties the marked set, preserving hover. Invoked on escape,
// pointer-down outside the results region, query commit, and page
// change, before the triggering event is otherwise handled.
func (s *Selection) Clear() {
	s.marked = make(map[string]struct{})
}
