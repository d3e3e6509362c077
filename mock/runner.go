package mock

import (
	"os/exec"
	"slices"
	"sync"

	"github.com/arezlabs/chromepdf"
)

var _ chromepdf.CommandRunner = (*Runner)(nil)

// Runner is a thread-safe mock implementation of chromepdf.CommandRunner.
// It records every command and delegates to RunFn, which may write to the
// command's Stdout and Stderr to simulate the external binary.
type Runner struct {
	RunFn func(cmd *exec.Cmd) error

	mu    sync.Mutex
	calls [][]string
}

// Run records the call and dispatches to RunFn.
func (r *Runner) Run(cmd *exec.Cmd) error {
	r.mu.Lock()
	r.calls = append(r.calls, slices.Clone(cmd.Args))
	r.mu.Unlock()

	if r.RunFn == nil {
		return nil
	}
	return r.RunFn(cmd)
}

// Calls returns the argv of every recorded command, including argv[0].
func (r *Runner) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}
