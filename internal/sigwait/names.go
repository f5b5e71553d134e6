package sigwait

import "os"

// Unnamed is reported for any delivered signal outside the name table.
const Unnamed = "(unnamed)"

// Name maps a signal to its report name. The table is closed: signals it
// does not cover map to Unnamed rather than to their OS string, so harness
// expectations stay stable across platforms and Go versions.
func Name(sig os.Signal) string {
	if n, ok := names[sig]; ok {
		return n
	}
	return Unnamed
}
