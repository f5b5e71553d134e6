// Package runner drives fixture subprocesses from tests: it spawns a
// command with captured output, delivers signals to it (or to its process
// group), and polls its output for expected report lines.
//
// It only serves this repository's own tests. It is not the external
// harness that orchestrates fixtures in other projects' test suites.
package runner

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
)

// Cmd wraps an exec.Cmd with goroutine-safe output capture and signal
// delivery helpers.
type Cmd struct {
	// ID tags this fixture instance in test logs so interleaved runs can
	// be told apart.
	ID string

	// Stdout and Stderr accumulate the process output as it arrives.
	Stdout *Buffer
	Stderr *Buffer

	cmd *exec.Cmd
}

// New returns a Cmd for the given program. Start must be called before any
// signal delivery.
func New(name string, args ...string) *Cmd {
	c := &Cmd{
		ID:     uuid.NewString(),
		Stdout: &Buffer{},
		Stderr: &Buffer{},
		cmd:    exec.Command(name, args...),
	}
	c.cmd.Stdout = c.Stdout
	c.cmd.Stderr = c.Stderr
	return c
}

// Setpgid places the process in its own process group so SignalGroup can
// target it without hitting the test process. Must be called before Start.
// No-op on windows.
func (c *Cmd) Setpgid() {
	setpgid(c.cmd)
}

// Start launches the process.
func (c *Cmd) Start() error {
	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.cmd.Path, err)
	}
	return nil
}

// Wait blocks until the process exits and returns its exit error, if any.
func (c *Cmd) Wait() error {
	return c.cmd.Wait()
}

// ExitCode returns the exit code of the finished process, or -1 if it has
// not exited.
func (c *Cmd) ExitCode() int {
	if c.cmd.ProcessState == nil {
		return -1
	}
	return c.cmd.ProcessState.ExitCode()
}

// Pid returns the process id of the started process.
func (c *Cmd) Pid() int {
	return c.cmd.Process.Pid
}

// Signal delivers sig to the process itself.
func (c *Cmd) Signal(sig os.Signal) error {
	return c.cmd.Process.Signal(sig)
}

// SignalGroup delivers sig to the whole process group on unix, falling
// back to the process itself elsewhere.
func (c *Cmd) SignalGroup(sig os.Signal) error {
	return signalGroup(c.cmd, sig)
}
