//go:build windows

package cli

import "errors"

// sendSignal is unavailable on windows: there is no pid-addressed signal
// delivery.
func sendSignal(name string, pid int) error {
	return errors.New("sending signals is not supported on windows")
}
