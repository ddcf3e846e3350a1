// Package packagemanager adapts the four supported package managers to
// a common capability set: refresh the package database, list pending
// updates in the canonical changelog form, apply updates, and remove
// orphaned packages.
package packagemanager

import (
	"context"
	"fmt"

	cr "github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
)

// Manager is the uniform interface over pacman, apt, apk and dnf.
//
// PendingUpdates returns whatever could be parsed together with the
// subprocess error, if any; whether that error matters is the caller's
// decision.
type Manager interface {
	Kind() envdetect.ManagerKind
	Refresh(ctx context.Context) error
	PendingUpdates(ctx context.Context) ([]string, error)
	ApplyUpdates(ctx context.Context) error
	RemoveOrphans(ctx context.Context) error
}

// ForKind selects the adapter for a detected manager kind. Selection
// happens once at startup; the returned Manager is used for the whole
// process lifetime.
func ForKind(kind envdetect.ManagerKind, runner cr.Runner) (Manager, error) {
	switch kind {
	case envdetect.Pacman:
		return &PacmanManager{Runner: runner}, nil
	case envdetect.Apt:
		return &AptManager{Runner: runner}, nil
	case envdetect.Apk:
		return &ApkManager{Runner: runner}, nil
	case envdetect.Dnf:
		return &DnfManager{Runner: runner}, nil
	default:
		return nil, fmt.Errorf("unsupported package manager %q", kind)
	}
}

// formatUpdate renders one pending update as "name = [old] -> [new]",
// the line format the scratch file and the changelog share.
func formatUpdate(name, oldVersion, newVersion string) string {
	return fmt.Sprintf("%s = [%s] -> [%s]", name, oldVersion, newVersion)
}
