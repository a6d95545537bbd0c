// Package stream provides the byte source abstraction the schema decoder
// reads from.
//
// Reader wraps any io.Reader and exposes exact-length reads: ReadExact(n)
// returns n bytes or fails, accumulating partial deliveries in a private
// buffer until enough bytes have arrived. The underlying reader is never
// assumed to satisfy a request in one call.
//
// ChunkSource is an io.Reader fed explicitly with Push and terminated with
// Close. A Read against an empty source suspends the calling goroutine until
// a chunk arrives or the source is closed, so a decode can wait for input
// without spinning. A zero-length Push is a valid (empty) delivery and is
// distinct from end-of-input.
package stream
