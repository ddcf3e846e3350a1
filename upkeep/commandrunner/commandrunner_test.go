package commandrunner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCapturesStdout(t *testing.T) {
	runner := &ExecRunner{}

	result, err := runner.Run(context.Background(), CommandConfig{
		Command: "echo",
		Args:    []string{"hello"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(result.STDOUT))
	assert.Equal(t, 0, result.ExitCode)
}

func TestRunEscalatePrependsEscalator(t *testing.T) {
	// Using echo as the escalator makes the escalated command print
	// itself instead of running, which exposes the argv construction.
	runner := &ExecRunner{Escalator: "echo"}

	result, err := runner.Run(context.Background(), CommandConfig{
		Command:  "pacman",
		Args:     []string{"-Sy"},
		Escalate: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "pacman -Sy", strings.TrimSpace(result.STDOUT))
}

func TestRunNonZeroExit(t *testing.T) {
	runner := &ExecRunner{}

	result, err := runner.Run(context.Background(), CommandConfig{
		Command: "false",
	})

	assert.Error(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestRunWithoutEscalationIgnoresEscalator(t *testing.T) {
	runner := &ExecRunner{Escalator: "doas"}

	result, err := runner.Run(context.Background(), CommandConfig{
		Command: "echo",
		Args:    []string{"plain"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "plain", strings.TrimSpace(result.STDOUT))
}
