// Package config loads the static run configuration. The file is read
// once at process start; the values are not exposed as CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// RunMode selects what happens after environment detection.
type RunMode string

const (
	ModePrompt RunMode = "prompt"
	ModeUpdate RunMode = "update"
	ModeFull   RunMode = "full"
)

// Config is the process configuration.
type Config struct {
	RunMode RunMode
	Logging bool
}

// DefaultPath is the conventional config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "upkeep", "upkeep.ini"), nil
}

// Load reads the config file. A missing file yields the defaults
// (prompt mode, logging on). An unrecognized run_mode or logging value
// is a configuration error.
func Load(path string) (Config, error) {
	c := Config{RunMode: ModePrompt, Logging: true}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return Config{}, err
	}
	section := cfg.Section("upkeep")

	if v := section.Key("run_mode").String(); v != "" {
		switch RunMode(v) {
		case ModePrompt, ModeUpdate, ModeFull:
			c.RunMode = RunMode(v)
		default:
			return Config{}, fmt.Errorf("invalid run_mode %q (want prompt, update or full)", v)
		}
	}

	if v := section.Key("logging").String(); v != "" {
		switch v {
		case "on":
			c.Logging = true
		case "off":
			c.Logging = false
		default:
			return Config{}, fmt.Errorf("invalid logging value %q (want on or off)", v)
		}
	}

	return c, nil
}
