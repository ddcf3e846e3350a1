// Package scratch manages the process-lifetime file holding the
// current formatted pending-update list. The pending-update count is
// defined as the line count of this file, so workflows always read the
// count back from disk rather than trusting in-memory state.
package scratch

import (
	"os"
	"path/filepath"
	"strings"
)

// File is the scratch file at a fixed path.
type File struct {
	path string
}

// New returns a scratch file at the given path.
func New(path string) *File {
	return &File{path: path}
}

// Default returns the scratch file at its conventional location. The
// path is fixed per process run; concurrent self-invocation is not a
// supported mode.
func Default() *File {
	return New(filepath.Join(os.TempDir(), "upkeep-pending.list"))
}

func (f *File) Path() string {
	return f.path
}

// Write replaces the scratch file contents with the given lines.
func (f *File) Write(lines []string) error {
	data := ""
	if len(lines) > 0 {
		data = strings.Join(lines, "\n") + "\n"
	}
	return os.WriteFile(f.path, []byte(data), 0644)
}

// Lines reads the scratch file back, one entry per non-empty line.
func (f *File) Lines() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Count returns the pending-update count, i.e. the scratch file's
// non-empty line count.
func (f *File) Count() (int, error) {
	lines, err := f.Lines()
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Remove deletes the scratch file. Removing an absent file is not an
// error; every exit path calls this.
func (f *File) Remove() error {
	err := os.Remove(f.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
