package packagemanager

import (
	"context"
	"strings"

	cr "github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
)

type AptManager struct {
	Runner cr.Runner
}

func (am *AptManager) Kind() envdetect.ManagerKind {
	return envdetect.Apt
}

func (am *AptManager) Refresh(ctx context.Context) error {
	_, err := am.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apt-get",
		Escalate: true,
		Args:     []string{"update"},
	})
	return err
}

func (am *AptManager) PendingUpdates(ctx context.Context) ([]string, error) {
	output, err := am.Runner.Run(ctx, cr.CommandConfig{
		Command: "apt",
		Args:    []string{"list", "--upgradable"},
	})

	// Lines look like
	// "name/suite 1.1 amd64 [upgradable from: 1.0]".
	var updates []string
	for _, line := range strings.Split(output.STDOUT, "\n") {
		if !strings.Contains(line, "upgradable from") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		name := strings.SplitN(parts[0], "/", 2)[0]
		oldVersion := strings.TrimSuffix(parts[len(parts)-1], "]")
		updates = append(updates, formatUpdate(name, oldVersion, parts[1]))
	}
	return updates, err
}

func (am *AptManager) ApplyUpdates(ctx context.Context) error {
	_, err := am.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apt-get",
		Escalate: true,
		Env:      []string{"DEBIAN_FRONTEND=noninteractive"},
		Args:     []string{"dist-upgrade", "-y"},
	})
	return err
}

func (am *AptManager) RemoveOrphans(ctx context.Context) error {
	_, err := am.Runner.Run(ctx, cr.CommandConfig{
		Command:  "apt-get",
		Escalate: true,
		Args:     []string{"autoremove", "-y"},
	})
	return err
}
