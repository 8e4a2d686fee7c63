// Package types provides the shared data model used throughout the driftlint CLI.
// This package contains shared types to avoid circular dependencies between packages.
package types

import (
	"path/filepath"
	"strings"
)

// FileRecord describes a single file discovered during the scan phase,
// decomposed into the path components the rule checks operate on.
type FileRecord struct {
	// Path is the normalized path of the file and the unique inventory key
	Path string
	// Filename is the base name including the extension
	Filename string
	// Stem is the base name with the extension removed
	Stem string
	// Extension is the lowercased extension including the leading dot ("" when none)
	Extension string
	// Directory is the path of the containing directory
	Directory string
}

// NewFileRecord derives a FileRecord from a file path.
func NewFileRecord(path string) FileRecord {
	clean := filepath.ToSlash(filepath.Clean(path))
	filename := filepath.Base(clean)

	// Dotfiles like .gitignore have no extension; filepath.Ext would treat
	// the whole name as one.
	ext := filepath.Ext(filename)
	if ext == filename {
		ext = ""
	}

	return FileRecord{
		Path:      clean,
		Filename:  filename,
		Stem:      strings.TrimSuffix(filename, ext),
		Extension: strings.ToLower(ext),
		Directory: filepath.ToSlash(filepath.Dir(clean)),
	}
}

// ImportEdge records one relative import statement extracted from a source
// file. Only specifiers beginning with "./" or "../" are retained; bare
// package imports are discarded during extraction.
type ImportEdge struct {
	// FromPath is the path of the file containing the import statement
	FromPath string
	// Specifier is the raw import target as written (e.g. "./userController")
	Specifier string
}

// Inventory is the complete set of FileRecords produced by one traversal of
// the audited tree. It preserves scan order, which duplicate detection relies
// on to pick the canonical first-seen file, and is never mutated after the
// scan phase completes.
type Inventory struct {
	byPath  map[string]FileRecord
	ordered []FileRecord
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{byPath: make(map[string]FileRecord)}
}

// Add inserts a record, keyed by its path. The first record for a given path
// wins; later additions for the same path are ignored.
func (inv *Inventory) Add(rec FileRecord) {
	if _, exists := inv.byPath[rec.Path]; exists {
		return
	}
	inv.byPath[rec.Path] = rec
	inv.ordered = append(inv.ordered, rec)
}

// Get returns the record for a path, if present.
func (inv *Inventory) Get(path string) (FileRecord, bool) {
	rec, ok := inv.byPath[path]
	return rec, ok
}

// Records returns all records in scan order.
func (inv *Inventory) Records() []FileRecord {
	return inv.ordered
}

// Len returns the number of scanned files.
func (inv *Inventory) Len() int {
	return len(inv.ordered)
}
