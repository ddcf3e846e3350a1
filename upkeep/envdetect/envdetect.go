// Package envdetect determines which package manager and which
// privilege escalator the host provides. Detection runs once at
// startup; the result is immutable for the process lifetime.
package envdetect

import (
	"errors"
	"os"
	"path/filepath"
)

// ManagerKind identifies one of the supported package managers.
type ManagerKind string

const (
	Pacman ManagerKind = "pacman"
	Apt    ManagerKind = "apt"
	Apk    ManagerKind = "apk"
	Dnf    ManagerKind = "dnf"
)

// Escalator is the command used to run mutating package-manager
// operations with elevated rights.
type Escalator string

const (
	Doas Escalator = "doas"
	Sudo Escalator = "sudo"
)

// Environment is the detected host configuration.
type Environment struct {
	Manager   ManagerKind
	Escalator Escalator
}

// ErrNoPackageManager is returned when none of the marker paths exist.
var ErrNoPackageManager = errors.New("no package manager found")

// markers are checked in priority order; the first hit wins.
var markers = []struct {
	kind ManagerKind
	path string
}{
	{Pacman, "etc/pacman.d"},
	{Apt, "etc/apt"},
	{Apk, "etc/apk"},
	{Dnf, "etc/dnf"},
}

const doasMarker = "etc/doas.conf"

// Detect inspects marker paths under root (the live system uses "/")
// and returns the environment. doas is chosen when its config file
// exists; sudo is the fallback and is never itself verified.
func Detect(root string) (Environment, error) {
	env := Environment{Escalator: Sudo}

	for _, m := range markers {
		if pathExists(filepath.Join(root, m.path)) {
			env.Manager = m.kind
			break
		}
	}
	if env.Manager == "" {
		return Environment{}, ErrNoPackageManager
	}

	if pathExists(filepath.Join(root, doasMarker)) {
		env.Escalator = Doas
	}
	return env, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
