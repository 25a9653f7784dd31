// File: inifile/doc.go

// Package inifile implements a document model for INI-style configuration
// text: named sections holding ordered key/value pairs, with pass-through
// preservation of comments and free-form line blocks.
//
// Features:
//   - Case-insensitive key lookup with case-preserving storage
//   - Extend semantics: layer a second file over an already loaded document
//   - Raw-line sections that round-trip unrecognized content untouched
//   - Generic typed accessors backed by strconv (Get, Set, SetWithDefault)
//   - Struct decoding via mapstructure (Scan) and encoding (SetStruct)
//   - Export/import to TOML, YAML, and JSON for format migration
//   - Builder pattern for layered loading with XDG file discovery
//   - Polling file watcher with change notification
//
// Quick Start:
//
//	doc := inifile.New()
//	if err := doc.LoadFile("settings.ini", false); err != nil {
//	    log.Fatal(err)
//	}
//
//	core := doc.GetOrCreateSection("Core")
//	cpuThread, _ := inifile.Get(core, "CPUThread", true)
//	inifile.SetWithDefault(core, "Language", 0, 0) // omitted, equals default
//
//	if err := doc.SaveFile("settings.ini"); err != nil {
//	    log.Fatal(err)
//	}
//
// Layered documents (defaults file overridden by a user file):
//
//	doc, err := inifile.NewBuilder().
//	    WithFile("defaults.ini").
//	    WithOverlay("user.ini").
//	    Build()
//
// Error Philosophy:
// Parsing never fails on malformed content. Lines that are not section
// headers or key/value pairs are captured verbatim in the enclosing
// section's raw body so a later save does not destroy them. Typed reads
// that fail to parse fall back to the caller's default silently. Only file
// I/O surfaces errors.
//
// Concurrency:
// A Document is a plain in-memory structure with no internal locking and
// is not safe for concurrent mutation. Callers needing shared access must
// serialize it themselves, or use Watcher, which owns its document and
// swaps in a fresh one per reload.
package inifile
