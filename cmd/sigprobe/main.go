// sigprobe is a toolkit of subprocess fixtures for end-to-end signal and
// process testing. It implements behaviors that are useful when testing
// process-spawning tools in a way that reduces dependencies on the
// environment the tests run in.
package main

import "github.com/probekit/sigprobe/internal/cli"

func main() {
	cli.Execute()
}
