package chromepdf

import (
	"errors"
	"os/exec"
)

// CommandRunner abstracts process execution so tests can substitute a fake
// while production code delegates to os/exec.
type CommandRunner interface {
	Run(cmd *exec.Cmd) error
}

// DefaultRunner executes commands with os/exec.
type DefaultRunner struct{}

// Run starts cmd and waits for it to exit.
func (DefaultRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// exitCodeFrom extracts the exit status of a finished command. It returns -1
// when the process never started.
func exitCodeFrom(err error, cmd *exec.Cmd) int {
	if cmd != nil && cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode()
	}
	return -1
}
