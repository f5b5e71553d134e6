//go:build unix

package cli

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// sendSignal resolves name ("SIGUSR1", "SIGTERM", ...) and delivers it.
func sendSignal(name string, pid int) error {
	sig := unix.SignalNum(name)
	if sig == 0 {
		return fmt.Errorf("unknown signal %q", name)
	}
	return unix.Kill(pid, sig)
}
