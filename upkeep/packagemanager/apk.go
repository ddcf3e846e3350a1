package packagemanager

import (
	"context"
	"strings"

	cr "github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
)

type ApkManager struct {
	Runner cr.Runner
}

func (akm *ApkManager) Kind() envdetect.ManagerKind {
	return envdetect.Apk
}

func (akm *ApkManager) Refresh(ctx context.Context) error {
	_, err := akm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apk",
		Escalate: true,
		Args:     []string{"update"},
	})
	return err
}

func (akm *ApkManager) PendingUpdates(ctx context.Context) ([]string, error) {
	output, err := akm.Runner.Run(ctx, cr.CommandConfig{
		Command: "apk",
		Args:    []string{"version", "-l", "<"},
	})

	// Lines look like "name-1.0-r0 < 1.1-r0"; the header line has no
	// "<" in the middle column and is skipped.
	var updates []string
	for _, line := range strings.Split(output.STDOUT, "\n") {
		parts := strings.Fields(line)
		if len(parts) != 3 || parts[1] != "<" {
			continue
		}
		name, oldVersion := splitPackageVersion(parts[0])
		updates = append(updates, formatUpdate(name, oldVersion, parts[2]))
	}
	return updates, err
}

func (akm *ApkManager) ApplyUpdates(ctx context.Context) error {
	_, err := akm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apk",
		Escalate: true,
		Args:     []string{"upgrade"},
	})
	return err
}

func (akm *ApkManager) RemoveOrphans(ctx context.Context) error {
	_, err := akm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apk",
		Escalate: true,
		Args:     []string{"cache", "clean"},
	})
	return err
}

// splitPackageVersion splits "name-1.2.4-r1" at the version boundary.
// apk versions occupy the last two dash-separated components
// (version and pkgrel).
func splitPackageVersion(s string) (name, version string) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return s, ""
	}
	cut := len(parts) - 2
	return strings.Join(parts[:cut], "-"), strings.Join(parts[cut:], "-")
}
