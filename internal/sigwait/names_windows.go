//go:build windows

package sigwait

import (
	"os"
	"syscall"
)

// names is the closed lookup table used for reports. Windows only delivers
// a meaningful subset of the unix signal surface.
var names = map[os.Signal]string{
	syscall.SIGINT:  "interrupt",
	syscall.SIGTERM: "SIGTERM",
}

// Default returns the watched signal set.
func Default() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}
