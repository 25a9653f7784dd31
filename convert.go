// FILE: inifile/convert.go
package inifile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// exportMap renders the document as section name -> key -> value, the shape
// shared by all structured-format encoders. Raw-mode sections have no pair
// representation and are left out.
func (d *Document) exportMap() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for _, s := range d.sections {
		if s.HasLines() {
			continue
		}
		entries := make(map[string]string, s.Len())
		for _, key := range s.Keys() {
			entries[key], _ = s.Get(key)
		}
		out[s.name] = entries
	}
	return out
}

// EncodeTOML writes the document's sections as TOML tables of string
// values. Raw-mode sections are skipped.
func (d *Document) EncodeTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d.exportMap()); err != nil {
		return fmt.Errorf("failed to encode document as TOML: %w", err)
	}
	return nil
}

// EncodeYAML writes the document's sections as YAML mappings of string
// values. Raw-mode sections are skipped.
func (d *Document) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(d.exportMap()); err != nil {
		return fmt.Errorf("failed to encode document as YAML: %w", err)
	}
	return nil
}

// EncodeJSON writes the document's sections as JSON objects of string
// values. Raw-mode sections are skipped.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.exportMap()); err != nil {
		return fmt.Errorf("failed to encode document as JSON: %w", err)
	}
	return nil
}

// DecodeTOML imports TOML data into the document. Top-level tables become
// sections; nested tables flatten into dotted section names. See importMap
// for the keepCurrentData semantics.
func (d *Document) DecodeTOML(data []byte, keepCurrentData bool) error {
	nested := make(map[string]any)
	if err := toml.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("failed to parse TOML data: %w", err)
	}
	d.importMap(nested, keepCurrentData)
	return nil
}

// DecodeYAML imports YAML data into the document, mirroring DecodeTOML.
func (d *Document) DecodeYAML(data []byte, keepCurrentData bool) error {
	nested := make(map[string]any)
	if err := yaml.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}
	d.importMap(nested, keepCurrentData)
	return nil
}

// DecodeJSON imports JSON data into the document, mirroring DecodeTOML.
// Numbers are kept verbatim to preserve precision.
func (d *Document) DecodeJSON(data []byte, keepCurrentData bool) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	nested := make(map[string]any)
	if err := decoder.Decode(&nested); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	d.importMap(nested, keepCurrentData)
	return nil
}

// importMap converts a nested format map into sections. Each dotted path
// minus its last segment names a section and the last segment the key.
// Top-level scalars have no enclosing section and are dropped, matching the
// parser's treatment of lines before the first header. Without
// keepCurrentData the document is replaced; with it, sections and keys
// merge with the imported values winning.
func (d *Document) importMap(nested map[string]any, keepCurrentData bool) {
	if !keepCurrentData {
		d.Clear()
	}

	flat := flattenMap(nested, "")

	// Map order is random; apply in sorted path order so section creation
	// order is deterministic.
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		dot := strings.LastIndexByte(path, '.')
		if dot < 0 {
			continue
		}
		section := path[:dot]
		key := path[dot+1:]
		d.GetOrCreateSection(section).Set(key, formatImported(flat[path]))
	}
}

// formatImported converts a value decoded from TOML/YAML/JSON to its stored
// string form.
func formatImported(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = formatImported(elem)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
