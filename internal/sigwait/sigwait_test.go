//go:build unix

package sigwait

// Test Plan for Waiter:
// - Watch prints the ready marker exactly once, before any report
// - Watch with an empty set returns ConfigError and prints nothing
// - Watch surfaces Block failures as ConfigError and prints nothing
// - Wait reports each delivered signal using the closed name table
// - Wait reports out-of-table signals as "(unnamed)"
// - Wait silently retries transient (EINTR) retrieval failures
// - Wait returns WaitError for any other retrieval failure
// - ConfigError and WaitError unwrap to the underlying cause

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// transientErr builds the wrapped interrupted-wait error a real retrieval
// would surface.
func transientErr() error {
	return fmt.Errorf("retrieval interrupted: %w", unix.EINTR)
}

// step is a single scripted Next result.
type step struct {
	sig os.Signal
	err error
}

// scriptedSource feeds a fixed sequence of retrieval results to a Waiter.
type scriptedSource struct {
	blockErr error
	blocked  []os.Signal
	steps    []step
	pos      int
}

func (s *scriptedSource) Block(sigs ...os.Signal) error {
	s.blocked = sigs
	return s.blockErr
}

func (s *scriptedSource) Next() (os.Signal, error) {
	if s.pos >= len(s.steps) {
		return nil, ErrStopped
	}
	st := s.steps[s.pos]
	s.pos++
	return st.sig, st.err
}

func (s *scriptedSource) Stop() {}

func TestWatch_PrintsReadyBeforeAnyReport(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{steps: []step{{sig: syscall.SIGINT}}}
	w := New(src, &out)

	require.NoError(t, w.Watch(Default()...))
	err := w.Wait()

	var waitErr *WaitError
	require.ErrorAs(t, err, &waitErr)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, ReadyMarker, lines[0], "ready must be the first line")
	assert.Equal(t, []string{"ready", "interrupt"}, lines)
	assert.Equal(t, Default(), src.blocked)
}

func TestWatch_EmptySet(t *testing.T) {
	var out bytes.Buffer
	w := New(&scriptedSource{}, &out)

	err := w.Watch()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, ErrEmptySet)
	assert.Empty(t, out.String(), "setup failure must not print ready")
}

func TestWatch_BlockFailure(t *testing.T) {
	cause := errors.New("invalid signal set")
	var out bytes.Buffer
	w := New(&scriptedSource{blockErr: cause}, &out)

	err := w.Watch(syscall.SIGINT)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "blocking signals")
	assert.Empty(t, out.String())
}

func TestWait_NameTable(t *testing.T) {
	tests := []struct {
		name string
		sig  os.Signal
		want string
	}{
		{name: "interrupt", sig: syscall.SIGINT, want: "interrupt"},
		{name: "hangup", sig: syscall.SIGHUP, want: "SIGHUP"},
		{name: "terminate", sig: syscall.SIGTERM, want: "SIGTERM"},
		{name: "quit", sig: syscall.SIGQUIT, want: "SIGQUIT"},
		{name: "user signal 1", sig: syscall.SIGUSR1, want: "SIGUSR1"},
		{name: "user signal 2", sig: syscall.SIGUSR2, want: "SIGUSR2"},
		{name: "outside the table", sig: syscall.SIGWINCH, want: Unnamed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			src := &scriptedSource{steps: []step{{sig: tt.sig}}}
			w := New(src, &out)

			require.NoError(t, w.Watch(Default()...))
			_ = w.Wait()

			assert.Equal(t, ReadyMarker+"\n"+tt.want+"\n", out.String())
		})
	}
}

func TestWait_RetriesTransientInterruption(t *testing.T) {
	var out bytes.Buffer
	src := &scriptedSource{steps: []step{
		{err: transientErr()},
		{sig: syscall.SIGUSR1},
	}}
	w := New(src, &out)

	require.NoError(t, w.Watch(Default()...))
	_ = w.Wait()

	// The interrupted retrieval leaves no trace: only the signal that
	// actually arrived is reported.
	assert.Equal(t, ReadyMarker+"\nSIGUSR1\n", out.String())
	assert.Equal(t, len(src.steps), src.pos, "both retrievals consumed")
}

func TestWait_FatalRetrievalFailure(t *testing.T) {
	cause := errors.New("wait failed")
	var out bytes.Buffer
	src := &scriptedSource{steps: []step{{err: cause}}}
	w := New(src, &out)

	require.NoError(t, w.Watch(Default()...))
	err := w.Wait()

	var waitErr *WaitError
	require.ErrorAs(t, err, &waitErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "waiting for signal")
	assert.Equal(t, ReadyMarker+"\n", out.String(), "no report for a failed retrieval")
}

func TestName_ClosedTable(t *testing.T) {
	assert.Equal(t, "interrupt", Name(syscall.SIGINT))
	assert.Equal(t, Unnamed, Name(syscall.SIGPIPE))
	assert.Equal(t, Unnamed, Name(fakeSignal{}))
}

// fakeSignal is an os.Signal that cannot appear in the name table.
type fakeSignal struct{}

func (fakeSignal) Signal()        {}
func (fakeSignal) String() string { return "fake" }
