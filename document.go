// File: inifile/document.go
package inifile

import (
	"sort"
	"strings"
)

// Document is an ordered collection of uniquely named Sections. Section
// order is first-seen order on load (or creation order for sections made at
// runtime) until SortSections replaces it. Section name identity is
// case-sensitive: "Core" and "core" are distinct sections.
//
// A Document owns its Sections exclusively; pointers returned by section
// accessors are borrowed views into the document.
type Document struct {
	sections []*Section
}

// New creates an empty Document.
func New() *Document {
	return &Document{}
}

// Section returns the section with the given name, if present.
func (d *Document) Section(name string) (*Section, bool) {
	for _, s := range d.sections {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// GetOrCreateSection returns the existing section with the given name, or
// appends and returns a new empty one. It never fails.
func (d *Document) GetOrCreateSection(name string) *Section {
	if s, ok := d.Section(name); ok {
		return s
	}
	s := newSection(name)
	d.sections = append(d.sections, s)
	return s
}

// Sections returns the sections in document order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// DeleteSection removes the named section and reports whether it existed.
func (d *Document) DeleteSection(name string) bool {
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteKey removes a key from the named section. It returns false if the
// section does not exist or the key was not present.
func (d *Document) DeleteKey(section, key string) bool {
	s, ok := d.Section(section)
	if !ok {
		return false
	}
	return s.Delete(key)
}

// Exists reports whether the key exists in the named section.
func (d *Document) Exists(section, key string) bool {
	s, ok := d.Section(section)
	return ok && s.Exists(key)
}

// Keys returns the named section's keys in first-set order, or false if the
// section does not exist.
func (d *Document) Keys(section string) ([]string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return nil, false
	}
	return s.Keys(), true
}

// SetLines replaces the raw line body of the named section, creating the
// section if needed.
func (d *Document) SetLines(section string, lines []string) {
	d.GetOrCreateSection(section).SetLines(lines)
}

// Lines returns the raw line body of the named section, or false if the
// section does not exist or has no body. See Section.Lines for the comment
// removal rule.
func (d *Document) Lines(section string, removeComments bool) ([]string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return nil, false
	}
	return s.Lines(removeComments)
}

// SortSections reorders the sections by name, case-insensitively, replacing
// file order with canonical lexical order. Names equal under folding are
// ordered case-sensitively so the result stays deterministic.
func (d *Document) SortSections() {
	sort.SliceStable(d.sections, func(i, j int) bool {
		a, b := strings.ToLower(d.sections[i].name), strings.ToLower(d.sections[j].name)
		if a == b {
			return d.sections[i].name < d.sections[j].name
		}
		return a < b
	})
}

// Clear removes all sections.
func (d *Document) Clear() {
	d.sections = nil
}
