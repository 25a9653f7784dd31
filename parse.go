// File: inifile/parse.go
package inifile

import (
	"bufio"
	"io"
	"strings"
)

// Parse reads INI text from r into the document. With keepCurrentData set
// to false the document is cleared first (full replace); with it set to
// true the text extends the current state: existing sections gain or
// overwrite keys in place, new sections are appended after them in file
// order.
//
// Malformed content never aborts parsing. Lines inside a section that are
// not key/value pairs (comments, directives) are captured verbatim in the
// section's raw body; lines before the first section header are dropped.
// The only possible error is a failure of the underlying reader.
func (d *Document) Parse(r io.Reader, keepCurrentData bool) error {
	if !keepCurrentData {
		d.Clear()
	}

	var current *Section

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Section header: "[name]" with free text between the brackets.
		if strings.HasPrefix(trimmed, "[") {
			if end := strings.Index(trimmed, "]"); end >= 0 {
				name := strings.TrimSpace(trimmed[1:end])
				current = d.GetOrCreateSection(name)
				continue
			}
			// No closing bracket: fall through and treat as content.
		}

		if current == nil {
			continue
		}

		if key, value, ok := ParseLine(line); ok {
			current.Set(key, value)
		} else {
			current.lines = append(current.lines, line)
		}
	}

	return scanner.Err()
}

// ParseLine splits one line of INI text into a key and value around the
// first '='. The key is the text before it, trimmed; the value is the text
// after it, trimmed and truncated at any inline comment. It returns false
// for lines that are not key/value pairs: empty lines, lines whose first
// payload byte starts a comment, lines without '=', and lines with an
// empty key.
//
// The splitter is exported because the same key/value convention appears
// outside full documents, e.g. in per-option override strings.
func ParseLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' {
		return "", "", false
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:eq])
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(stripComment(line[eq+1:]))
	return key, value, true
}

// stripComment truncates s at the first '#' that is not inside a
// double-quoted span. No escape convention is recognized; a '#' that must
// survive in a value has to sit between double quotes. This is the sole
// quoting rule of the format and a known compatibility boundary.
func stripComment(s string) string {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				return s[:i]
			}
		}
	}
	return s
}
