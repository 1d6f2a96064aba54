package storage

import "encoding/binary"

// WriteSize overwrites the 4-byte size field of the record whose header
// starts at headerStart.
func WriteSize(buf []byte, headerStart int, newSize uint32) {
	binary.BigEndian.PutUint32(buf[headerStart+3:headerStart+7], newSize)
}

// WriteCount overwrites the 4-byte count field of a Collection record whose
// header starts at headerStart. Only valid when the record's type is
// TypeCollection.
func WriteCount(buf []byte, headerStart int, newCount uint32) {
	binary.BigEndian.PutUint32(buf[headerStart+7:headerStart+11], newCount)
}

// PropagateSizeDelta applies a byte-length delta to every HeaderView in
// path, writing each record's new size to buf and updating the in-memory
// Size/ContentEnd fields so callers holding these pointers keep seeing
// consistent offsets. path is expected to run from the innermost changed
// record outward to the root; every record outside that chain needs no
// update because splices only ever occur within the subtree currently being
// edited.
func PropagateSizeDelta(buf []byte, path []*HeaderView, delta int) {
	for _, h := range path {
		newSize := uint32(int64(h.Size) + int64(delta))
		WriteSize(buf, h.HeaderStart, newSize)
		h.Size = newSize
		h.ContentEnd = h.HeaderStart + int(newSize)
	}
}
