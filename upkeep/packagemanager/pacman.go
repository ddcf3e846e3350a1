package packagemanager

import (
	"context"
	"strings"

	cr "github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
)

type PacmanManager struct {
	Runner cr.Runner
}

func (pm *PacmanManager) Kind() envdetect.ManagerKind {
	return envdetect.Pacman
}

func (pm *PacmanManager) Refresh(ctx context.Context) error {
	_, err := pm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "pacman",
		Escalate: true,
		Args:     []string{"-Sy"},
	})
	return err
}

func (pm *PacmanManager) PendingUpdates(ctx context.Context) ([]string, error) {
	output, err := pm.Runner.Run(ctx, cr.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Qu"},
	})

	// Lines look like "name 1.0-1 -> 1.1-1".
	var updates []string
	for _, line := range strings.Split(output.STDOUT, "\n") {
		parts := strings.Fields(line)
		if len(parts) >= 4 && parts[2] == "->" {
			updates = append(updates, formatUpdate(parts[0], parts[1], parts[3]))
		}
	}
	return updates, err
}

func (pm *PacmanManager) ApplyUpdates(ctx context.Context) error {
	_, err := pm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "pacman",
		Escalate: true,
		Args:     []string{"-Su", "--noconfirm"},
	})
	return err
}

// RemoveOrphans queries orphaned packages first and passes them to the
// removal command. -Qtdq exits non-zero when nothing is orphaned, so
// the query result decides, not its exit status; with no orphans the
// escalated removal is skipped entirely.
func (pm *PacmanManager) RemoveOrphans(ctx context.Context) error {
	output, _ := pm.Runner.Run(ctx, cr.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Qtdq"},
	})

	orphans := strings.Fields(output.STDOUT)
	if len(orphans) == 0 {
		return nil
	}

	_, err := pm.Runner.Run(ctx, cr.CommandConfig{
		Command:  "pacman",
		Escalate: true,
		Args:     append([]string{"-Rns", "--noconfirm"}, orphans...),
	})
	return err
}
