package stream

import (
	"io"
	"sync"
)

const deliveryQueueLen = 16

// ChunkSource is an io.Reader whose bytes are delivered out-of-band in
// arbitrarily sized chunks. Read suspends until data is available or the
// source is closed.
type ChunkSource struct {
	chunks    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	rest      []byte
}

// NewChunkSource creates an empty source.
func NewChunkSource() *ChunkSource {
	return &ChunkSource{
		chunks: make(chan []byte, deliveryQueueLen),
		done:   make(chan struct{}),
	}
}

// Push delivers a copy of p to the source. It blocks while the delivery
// queue is full. Pushing to a closed source discards the chunk.
func (s *ChunkSource) Push(p []byte) {
	c := make([]byte, len(p))
	copy(c, p)
	select {
	case <-s.done:
	case s.chunks <- c:
	}
}

// Close signals end-of-input. Chunks already delivered remain readable.
// Close is idempotent.
func (s *ChunkSource) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Read implements io.Reader. It returns at least one byte, suspending until
// a non-empty chunk arrives. After Close, once delivered chunks are drained,
// it returns io.EOF.
func (s *ChunkSource) Read(p []byte) (int, error) {
	for len(s.rest) == 0 {
		select {
		case c := <-s.chunks:
			// Zero-length deliveries loop back to waiting
			s.rest = c
		case <-s.done:
			// Closed, but drain anything still queued
			select {
			case c := <-s.chunks:
				s.rest = c
			default:
				return 0, io.EOF
			}
		}
	}
	n := copy(p, s.rest)
	s.rest = s.rest[n:]
	return n, nil
}
