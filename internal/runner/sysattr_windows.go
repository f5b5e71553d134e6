//go:build windows

package runner

import (
	"os"
	"os/exec"
)

// setpgid is a no-op: windows has no process groups in the unix sense.
func setpgid(cmd *exec.Cmd) {}

// signalGroup falls back to signalling the process itself.
func signalGroup(cmd *exec.Cmd, sig os.Signal) error {
	return cmd.Process.Signal(sig)
}
