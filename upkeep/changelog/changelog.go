// Package changelog appends update records to the per-user changelog
// file. The file only ever grows; records are never rewritten.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	separator  = "----------------------------------------"
)

// Writer appends records to the changelog at a fixed path.
type Writer struct {
	path string
	now  func() time.Time
}

// New returns a Writer for the given path.
func New(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

// DefaultPath is the changelog location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".upkeep.log"), nil
}

// Append writes one record. With no pending updates the record is a
// single timestamped "No packages updated" line; otherwise it is a
// header with the pending count, the formatted update lines, and a
// separator. The file is created if absent and never truncated.
func (w *Writer) Append(label string, lines []string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	timestamp := w.now().Format(timeLayout)

	var record strings.Builder
	if len(lines) == 0 {
		fmt.Fprintf(&record, "%s  No packages updated\n", timestamp)
	} else {
		fmt.Fprintf(&record, "%s  %s (%d pending)\n", timestamp, label, len(lines))
		for _, line := range lines {
			fmt.Fprintln(&record, line)
		}
		fmt.Fprintln(&record, separator)
	}

	_, err = f.WriteString(record.String())
	return err
}
