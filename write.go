// File: inifile/write.go
package inifile

import (
	"io"
	"strings"
)

// String regenerates the canonical INI text for the document. Sections are
// emitted in document order, separated by a blank line. A section with a
// raw line body emits its lines verbatim; otherwise its entries are emitted
// as "key = value" in case-insensitive key order.
func (d *Document) String() string {
	var b strings.Builder
	for i, s := range d.sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(s.name)
		b.WriteString("]\n")

		if s.HasLines() {
			// Raw mode wins over entries.
			for _, line := range s.lines {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			continue
		}

		for _, key := range s.sortedKeys() {
			b.WriteString(key)
			b.WriteString(" = ")
			b.WriteString(s.values[foldKey(key)])
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTo writes the canonical INI text to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
