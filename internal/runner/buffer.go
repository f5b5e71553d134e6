package runner

import (
	"bytes"
	"sync"
)

// Buffer is a goroutine-safe output buffer. The spawned process writes to
// it from its own pipe goroutine while the test polls String.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
