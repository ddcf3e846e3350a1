package packagemanager

import (
	"context"
	"strings"

	cr "github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
)

type DnfManager struct {
	Runner cr.Runner
}

func (dm *DnfManager) Kind() envdetect.ManagerKind {
	return envdetect.Dnf
}

func (dm *DnfManager) Refresh(ctx context.Context) error {
	_, err := dm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "dnf",
		Escalate: true,
		Args:     []string{"makecache"},
	})
	return err
}

// PendingUpdates passes dnf's check-update output through unformatted;
// its column layout varies too much across dnf versions to rewrite
// into the name = [old] -> [new] form the other managers use.
// check-update exits 100 when updates exist, so the output is parsed
// regardless of exit status.
func (dm *DnfManager) PendingUpdates(ctx context.Context) ([]string, error) {
	output, err := dm.Runner.Run(ctx, cr.CommandConfig{
		Command: "dnf",
		Args:    []string{"-q", "check-update"},
	})

	var updates []string
	for _, line := range strings.Split(output.STDOUT, "\n") {
		if strings.TrimSpace(line) != "" {
			updates = append(updates, line)
		}
	}
	return updates, err
}

func (dm *DnfManager) ApplyUpdates(ctx context.Context) error {
	_, err := dm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "dnf",
		Escalate: true,
		Args:     []string{"upgrade", "-y"},
	})
	return err
}

func (dm *DnfManager) RemoveOrphans(ctx context.Context) error {
	_, err := dm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "dnf",
		Escalate: true,
		Args:     []string{"autoremove", "-y"},
	})
	return err
}
