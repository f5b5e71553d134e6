//go:build unix

package sigwait

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isTransient reports whether a retrieval failure is a benign interrupted
// wait. Those are retried; everything else is fatal.
func isTransient(err error) bool {
	return errors.Is(err, unix.EINTR)
}
