// Package storage implements the on-disk record format: a contiguous byte
// image holding a rooted tree of length-prefixed records, the cursor that
// walks it, and the size propagation that keeps ancestor length fields
// consistent after a splice.
package storage

// Buffer is an in-memory mutable byte sequence mirroring the database file.
// It supports range-splice, the only mutation primitive the engine needs:
// replace [start,end) with an arbitrary-length payload, shifting everything
// after end accordingly.
type Buffer struct {
	data []byte
}

// NewBuffer wraps an existing byte slice. The buffer takes ownership of it.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the current backing slice. The slice identity may change
// across calls to Splice, so callers must re-fetch it after every mutation
// rather than caching it.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len reports the current buffer length.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Splice replaces data[start:end) with payload, shifting subsequent bytes.
// start == end is an insertion; payload == nil is a deletion.
func (b *Buffer) Splice(start, end int, payload []byte) {
	tail := append([]byte(nil), b.data[end:]...)
	out := append(b.data[:start:start], payload...)
	b.data = append(out, tail...)
}

// Append adds payload to the end of the buffer and returns the offset at
// which it was written.
func (b *Buffer) Append(payload []byte) int {
	offset := len(b.data)
	b.Splice(offset, offset, payload)
	return offset
}
