package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	pollTimeout  = 10 * time.Second
	pollInterval = 30 * time.Millisecond

	sendTimeout = time.Minute
)

// PollMessages polls buf until every message in want has appeared, in
// order. Unknown lines in between are ignored: signal-heavy environments
// interleave extraneous reports (e.g. "urgent I/O condition") with the
// ones under test. If done yields before the messages show up, its error
// is returned.
func PollMessages(buf *Buffer, done <-chan error, want ...string) error {
	var elapsed time.Duration

	for {
		select {
		case err := <-done:
			return err
		default:
			got := strings.Split(buf.String(), "\n")
			wantIndex := 0

			for _, line := range got {
				if line == want[wantIndex] {
					wantIndex++
				}
				if wantIndex == len(want) {
					return nil
				}
			}

			time.Sleep(pollInterval)
			elapsed += pollInterval
			if elapsed > pollTimeout {
				return fmt.Errorf("timed out polling output: want %v, got %v", want, got)
			}
		}
	}
}

// SendUntil re-delivers sig to the command's process group until the
// expected messages are observed on stdout. Some environments, CI in
// particular, drop signals now and then, so a single delivery is not
// enough to assert on.
func SendUntil(cmd *Cmd, sig os.Signal, want ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	for {
		if err := cmd.SignalGroup(sig); err != nil {
			return fmt.Errorf("cmd %s: sending %v: %w", cmd.ID, sig, err)
		}
		err := PollMessages(cmd.Stdout, make(chan error), want...)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("cmd %s: giving up on %v: %w", cmd.ID, sig, err)
		}
	}
}
