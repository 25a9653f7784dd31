// File: inifile/io.go
package inifile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by LoadFile and Build when an ini file does not
// exist. It is the only load failure that is usually safe to ignore.
var ErrNotFound = errors.New("ini file not found")

// LoadFile reads and parses an ini file into the document. See Parse for
// the keepCurrentData semantics. A missing file is reported as ErrNotFound.
func (d *Document) LoadFile(path string, keepCurrentData bool) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to open ini file '%s': %w", path, err)
	}
	defer file.Close()

	if err := d.Parse(file, keepCurrentData); err != nil {
		return fmt.Errorf("failed to read ini file '%s': %w", path, err)
	}
	return nil
}

// SaveFile writes the document's canonical text to path atomically.
func (d *Document) SaveFile(path string) error {
	return atomicWriteFile(path, []byte(d.String()))
}

// atomicWriteFile writes data to a temporary file in the target directory
// and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
