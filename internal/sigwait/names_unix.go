//go:build unix

package sigwait

import (
	"os"
	"syscall"
)

// names is the closed lookup table used for reports. The interrupt signal
// keeps its lowercase conventional name; the rest use their short SIG
// names. Anything outside the table reports as Unnamed.
var names = map[os.Signal]string{
	syscall.SIGINT:  "interrupt",
	syscall.SIGHUP:  "SIGHUP",
	syscall.SIGTERM: "SIGTERM",
	syscall.SIGQUIT: "SIGQUIT",
	syscall.SIGUSR1: "SIGUSR1",
	syscall.SIGUSR2: "SIGUSR2",
}

// Default returns the watched signal set: the interrupt signal plus the
// other catchable termination and user signals the name table covers.
func Default() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGUSR1,
		syscall.SIGUSR2,
	}
}
