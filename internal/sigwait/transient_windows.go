//go:build windows

package sigwait

// isTransient reports whether a retrieval failure is a benign interrupted
// wait. There is no EINTR equivalent on windows.
func isTransient(err error) bool {
	return false
}
