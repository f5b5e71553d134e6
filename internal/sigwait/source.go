package sigwait

import (
	"errors"
	"os"
	"os/signal"
)

// ErrStopped is returned by Next after the source has been stopped.
var ErrStopped = errors.New("signal source stopped")

// notifySource is the production Source. Blocking a signal means routing it
// to a buffered channel via signal.Notify, which suppresses the default
// disposition for the life of the process. Retrieval is a channel receive.
type notifySource struct {
	ch chan os.Signal
}

// NewSource returns a Source backed by os/signal.
func NewSource() Source {
	// Buffered so bursts delivered while a report is being written are not
	// dropped by the runtime.
	return &notifySource{ch: make(chan os.Signal, 16)}
}

func (s *notifySource) Block(sigs ...os.Signal) error {
	if len(sigs) == 0 {
		return ErrEmptySet
	}
	signal.Notify(s.ch, sigs...)
	return nil
}

func (s *notifySource) Next() (os.Signal, error) {
	sig, ok := <-s.ch
	if !ok {
		return nil, ErrStopped
	}
	return sig, nil
}

func (s *notifySource) Stop() {
	signal.Stop(s.ch)
	close(s.ch)
}
