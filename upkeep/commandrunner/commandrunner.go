// Package commandrunner executes package-manager subprocesses, with
// optional privilege escalation through doas or sudo. Every invocation
// is synchronous and untimed; callers decide what a non-zero exit means.
package commandrunner

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/upkeepops/upkeep/logger"
)

// CommandConfig describes one subprocess invocation.
type CommandConfig struct {
	Command  string
	Args     []string
	Env      []string
	Escalate bool
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// Runner executes commands on the local system.
type Runner interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}

// ExecRunner runs commands through os/exec. When a config asks for
// escalation the configured escalator command is prepended.
type ExecRunner struct {
	Escalator string
}

func (r *ExecRunner) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	name, args := config.Command, config.Args
	if config.Escalate && r.Escalator != "" {
		args = append([]string{name}, args...)
		name = r.Escalator
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if len(config.Env) > 0 {
		cmd.Env = append(os.Environ(), config.Env...)
	}
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Command:   name + " " + strings.Join(args, " "),
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	logger.L.WithField("command", result.Command).
		WithField("exit_code", result.ExitCode).
		WithField("duration", result.Duration).
		Debug("command finished")

	return result, err
}

func getExitCode(err error) int {
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			status := exitError.Sys().(syscall.WaitStatus)
			return status.ExitStatus()
		}
	}
	return 0
}
