// Package adapter contains filesystem and persistence adapters for the
// vbafog CLI.
package adapter

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	m "github.com/fogbyte/vbafog/internal/model"
)

// ModuleFSAdapter abstracts the filesystem operations the workflow relies
// on. It intentionally hides direct `os` access so the pipeline logic can be
// tested without touching the disk.
type ModuleFSAdapter interface {
	// ReadLines loads a source file as a slice of lines, newlines stripped.
	ReadLines(path m.Path) ([]string, error)

	// WriteLines writes the sequence to path, one line per element. The
	// destination is created or truncated; nothing is written until the
	// whole rewrite has succeeded.
	WriteLines(path m.Path, lines iter.Seq[string]) error

	// OutputPath derives the destination for a rewritten input file:
	// dir/name_obf.ext next to the input.
	OutputPath(input m.Path) m.Path

	// FileInfo returns metadata for a path so the workflow can check
	// existence up front.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalModuleFSAdapter implements ModuleFSAdapter against the local disk.
type LocalModuleFSAdapter struct{}

// NewLocalModuleFSAdapter constructs a LocalModuleFSAdapter ready to be
// wired into the workflow.
func NewLocalModuleFSAdapter() *LocalModuleFSAdapter {
	return &LocalModuleFSAdapter{}
}

// ReadLines loads file contents from disk, split into lines.
func (a *LocalModuleFSAdapter) ReadLines(path m.Path) ([]string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

// WriteLines writes the sequence to path with a trailing newline per line.
func (a *LocalModuleFSAdapter) WriteLines(path m.Path, lines iter.Seq[string]) error {
	f, err := os.Create(string(path))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)

	for line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return err
		}

		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// OutputPath maps path/file.ext to path/file_obf.ext.
func (a *LocalModuleFSAdapter) OutputPath(input m.Path) m.Path {
	dir, file := filepath.Split(string(input))
	ext := filepath.Ext(file)
	name := strings.TrimSuffix(file, ext)

	return m.Path(filepath.Join(dir, name+"_obf"+ext))
}

// FileInfo returns metadata for a path.
func (a *LocalModuleFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
