// Package sigwait implements the signal-waiter fixture: it takes a set of
// signals away from their default disposition, announces readiness, and then
// reports every delivered signal by name, forever.
//
// The fixture exists so a test harness driving a subprocess can verify that
// signals it sends are actually observed on the other side. It is a probe,
// not a service: every failure past setup is fatal and unrecoverable.
package sigwait

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadyMarker is the single line printed once the watched set is
// established. Harnesses poll for it before sending any signal.
const ReadyMarker = "ready"

// ErrEmptySet is returned when a Waiter is asked to watch no signals at all.
var ErrEmptySet = errors.New("empty signal set")

// Source abstracts signal blocking and synchronous retrieval.
//
// The production implementation delegates to os/signal. The interface
// exists so tests can inject sources that fail setup, deliver arbitrary
// signal values, or return transient retrieval errors.
type Source interface {
	// Block suppresses the default disposition of the given signals and
	// routes them to this source for synchronous retrieval. It is called
	// once; there is no unblock.
	Block(sigs ...os.Signal) error

	// Next suspends the caller until a blocked signal is delivered and
	// returns it. A transient retrieval failure (an interrupted wait) is
	// returned as an error satisfying errors.Is(err, unix.EINTR) on unix.
	Next() (os.Signal, error)

	// Stop releases the source. After Stop, Next returns an error.
	Stop()
}

// ConfigError reports that the watched signal set could not be established.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("blocking signals: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// WaitError reports a fatal retrieval failure. Transient interruptions are
// retried internally and never surface as a WaitError.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("waiting for signal: %v", e.Err)
}

func (e *WaitError) Unwrap() error { return e.Err }

// Waiter consumes signals from a Source and reports them on an output
// stream, one name per line.
type Waiter struct {
	src Source
	out io.Writer
}

// New returns a Waiter reporting to out.
func New(src Source, out io.Writer) *Waiter {
	return &Waiter{src: src, out: out}
}

// Watch establishes the watched signal set and emits the readiness marker.
// It returns a *ConfigError if the set is empty or cannot be blocked; in
// that case nothing is written to the output stream.
func (w *Waiter) Watch(sigs ...os.Signal) error {
	if len(sigs) == 0 {
		return &ConfigError{Err: ErrEmptySet}
	}
	if err := w.src.Block(sigs...); err != nil {
		return &ConfigError{Err: err}
	}
	fmt.Fprintln(w.out, ReadyMarker)
	return nil
}

// Wait reports delivered signals until retrieval fails. An interrupted
// retrieval is retried with no output; any other failure ends the loop
// with a *WaitError. There is no success return: under normal operation
// the fixture runs until killed by an unblockable signal.
func (w *Waiter) Wait() error {
	for {
		sig, err := w.src.Next()
		if err != nil {
			if isTransient(err) {
				continue
			}
			return &WaitError{Err: err}
		}
		fmt.Fprintln(w.out, Name(sig))
	}
}
