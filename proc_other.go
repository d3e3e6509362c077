//go:build !unix

package chromepdf

import "os/exec"

// configureProcess keeps the os/exec default of killing only the direct
// child on cancellation.
func configureProcess(cmd *exec.Cmd) {}
