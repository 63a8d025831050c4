package provision

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/arthur-debert/modinstall/pkg/logging"
)

// CommandResult holds the captured output of a finished command
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts external commands. An error is returned only when the
// command could not be started; a nonzero exit is reported in the result.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// ExecRunner runs commands with os/exec, capturing stdout and stderr
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}
