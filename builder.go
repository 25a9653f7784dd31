// File: inifile/builder.go
package inifile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// discoveryExtensions are tried in order when resolving a bare config name.
var discoveryExtensions = []string{".ini", ".cfg", ".conf"}

// Builder provides a fluent interface for assembling a layered document:
// one base file extended by any number of overlay files, the way a defaults
// file is layered under user-specific overrides.
type Builder struct {
	base      string
	overlays  []string
	discovery bool
	name      string
	paths     []string
}

// NewBuilder creates a new document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithFile sets the base document file.
func (b *Builder) WithFile(path string) *Builder {
	b.base = path
	return b
}

// WithOverlay appends overlay files. Overlays are loaded with extend
// semantics in the given order, so later overlays win; overlays that do not
// exist are skipped.
func (b *Builder) WithOverlay(paths ...string) *Builder {
	b.overlays = append(b.overlays, paths...)
	return b
}

// WithDiscovery locates the base file by searching for name plus a known
// extension (.ini, .cfg, .conf) in the given paths, the working directory,
// and the XDG config directories for name. An explicit WithFile wins over
// discovery; if nothing is found the builder proceeds without a base file.
func (b *Builder) WithDiscovery(name string, paths ...string) *Builder {
	b.discovery = true
	b.name = name
	b.paths = paths
	return b
}

// Build loads the base file and overlays into a single Document. A missing
// base file is reported as ErrNotFound alongside the (empty or
// overlay-only) document so callers can choose to proceed with it; all
// other load failures are fatal.
func (b *Builder) Build() (*Document, error) {
	base := b.base
	if base == "" && b.discovery {
		base = discoverFile(b.name, b.paths)
	}

	doc := New()
	var notFound error

	if base != "" {
		if err := doc.LoadFile(base, false); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			notFound = err
		}
	}

	for _, path := range b.overlays {
		if err := doc.LoadFile(path, true); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
	}

	return doc, notFound
}

// MustBuild is like Build but panics on error. ErrNotFound is not fatal:
// the caller can proceed with the overlays or an empty document.
func (b *Builder) MustBuild() *Document {
	doc, err := b.Build()
	if err != nil && !errors.Is(err, ErrNotFound) {
		panic(fmt.Sprintf("ini document build failed: %v", err))
	}
	return doc
}

// discoverFile searches for name with a known extension across the given
// paths, the working directory, and XDG config locations. It returns the
// first match, or "" when nothing is found.
func discoverFile(name string, extra []string) string {
	var searchPaths []string
	searchPaths = append(searchPaths, extra...)

	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	searchPaths = append(searchPaths, xdgConfigPaths(name)...)

	for _, dir := range searchPaths {
		for _, ext := range discoveryExtensions {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// xdgConfigPaths returns XDG-compliant config search paths for the app name.
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
