package stream

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"io"

	"github.com/lukateras/go-concordium-schema/errors"
)

const scratchSize = 512

// Reader pulls exact byte counts from an io.Reader that may deliver fewer
// bytes per call than requested. Bytes delivered but not yet consumed wait
// in a private pending buffer, the only mutable state in the decoder.
type Reader struct {
	src     io.Reader
	pending bytes.Buffer
	scratch [scratchSize]byte
	pos     int
	eof     bool
}

// NewReader creates a Reader over src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// fill pulls one delivery from the source into the pending buffer.
func (r *Reader) fill() error {
	if r.eof {
		return io.EOF
	}
	for {
		n, err := r.src.Read(r.scratch[:])
		if n > 0 {
			r.pending.Write(r.scratch[:n])
		}
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				r.eof = true
				if n > 0 {
					return nil
				}
				return io.EOF
			}
			return err
		}
		if n > 0 {
			return nil
		}
		// Zero-length delivery, not end-of-input. Pull again.
	}
}

// ensure accumulates deliveries until n bytes are pending.
func (r *Reader) ensure(n int) error {
	for r.pending.Len() < n {
		if err := r.fill(); err != nil {
			if stderrors.Is(err, io.EOF) {
				return errors.UnexpectedEOF(errors.PhaseRead, r.pos, n, r.pending.Len())
			}
			// A failed source means the remaining input will never arrive.
			return errors.New(errors.PhaseRead, errors.KindUnexpectedEOF).
				Offset(r.pos).
				Detail("source failed while %d of %d bytes pending", r.pending.Len(), n).
				Cause(err).
				Build()
		}
	}
	return nil
}

// ReadExact returns the next n bytes, or fails without consuming them.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if err := r.ensure(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	r.pending.Read(buf)
	r.pos += n
	return buf, nil
}

// ReadByte returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.ensure(1); err != nil {
		return 0, err
	}
	b, _ := r.pending.ReadByte()
	r.pos++
	return b, nil
}

// ReadU8 reads a one-byte unsigned integer.
func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

// ReadU32 reads a little-endian four-byte unsigned integer.
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}
