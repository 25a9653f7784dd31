// File: inifile/section.go
package inifile

import (
	"slices"
	"sort"
	"strings"
)

// Section is an ordered, case-insensitively keyed store of key/value string
// pairs belonging to a Document. Lookups fold key case; the spelling of a
// key as it was first set is preserved for display and serialization.
// Values are stored verbatim.
//
// A Section can alternatively carry a raw line body (SetLines/Lines), used
// for content that is not shaped as key/value pairs. The pair view and the
// line view are independently authoritative and are never reconciled
// against each other; mixing them on one section is legal but a section
// with a non-empty line body serializes its lines only.
type Section struct {
	name string

	keysOrder []string          // display keys in first-set order
	values    map[string]string // folded key -> value
	display   map[string]string // folded key -> display key

	lines []string // raw mode body, authoritative when non-empty
}

func newSection(name string) *Section {
	return &Section{
		name:    name,
		values:  make(map[string]string),
		display: make(map[string]string),
	}
}

// foldKey normalizes a key for case-insensitive comparison.
func foldKey(key string) string {
	return strings.ToLower(key)
}

// Name returns the section name. The name never changes after creation.
func (s *Section) Name() string {
	return s.name
}

// Exists reports whether an entry with the given key is present.
func (s *Section) Exists(key string) bool {
	_, exists := s.values[foldKey(key)]
	return exists
}

// Get returns the stored string value for the key, if present.
func (s *Section) Get(key string) (string, bool) {
	value, exists := s.values[foldKey(key)]
	return value, exists
}

// Set inserts or overwrites an entry. If a key already matches
// case-insensitively, its original spelling is kept; otherwise the entry is
// created with the given spelling and appended to the insertion order.
func (s *Section) Set(key, value string) {
	fk := foldKey(key)
	if _, exists := s.values[fk]; !exists {
		s.keysOrder = append(s.keysOrder, key)
		s.display[fk] = key
	}
	s.values[fk] = value
}

// Delete removes the entry for the key and reports whether it existed.
func (s *Section) Delete(key string) bool {
	fk := foldKey(key)
	if _, exists := s.values[fk]; !exists {
		return false
	}
	delete(s.values, fk)
	delete(s.display, fk)
	for i, k := range s.keysOrder {
		if foldKey(k) == fk {
			s.keysOrder = append(s.keysOrder[:i], s.keysOrder[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of key/value entries.
func (s *Section) Len() int {
	return len(s.values)
}

// Keys returns the entry keys in the order they were first set.
func (s *Section) Keys() []string {
	return slices.Clone(s.keysOrder)
}

// Values returns a copy of the entries keyed by their display spelling.
func (s *Section) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for fk, value := range s.values {
		out[s.display[fk]] = value
	}
	return out
}

// sortedKeys returns display keys in case-insensitive lexical order, the
// order entries are serialized in.
func (s *Section) sortedKeys() []string {
	keys := make([]string, 0, len(s.display))
	for _, disp := range s.display {
		keys = append(keys, disp)
	}
	sort.Slice(keys, func(i, j int) bool {
		return foldKey(keys[i]) < foldKey(keys[j])
	})
	return keys
}

// HasLines reports whether the section carries a raw line body.
func (s *Section) HasLines() bool {
	return len(s.lines) > 0
}

// SetLines replaces the raw line body wholesale, putting the section in raw
// mode. The key/value entries, if any, are left untouched but stop being
// serialized while the body is non-empty.
func (s *Section) SetLines(lines []string) {
	s.lines = slices.Clone(lines)
}

// Lines returns a copy of the raw line body, or false if the section has
// none. With removeComments set, lines containing a '#' comment are
// truncated at it and trimmed; lines that were purely a comment are dropped
// rather than returned empty.
func (s *Section) Lines(removeComments bool) ([]string, bool) {
	if len(s.lines) == 0 {
		return nil, false
	}
	if !removeComments {
		return slices.Clone(s.lines), true
	}
	out := make([]string, 0, len(s.lines))
	for _, line := range s.lines {
		stripped := stripComment(line)
		if len(stripped) != len(line) {
			line = strings.TrimSpace(stripped)
			if line == "" {
				continue
			}
		}
		out = append(out, line)
	}
	return out, true
}
