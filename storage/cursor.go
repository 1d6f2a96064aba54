package storage

import "encoding/binary"

// Cursor walks the direct children of a parent record, decoding one header
// at a time. It is an explicit struct rather than a callback-driven
// iterator: mutations happen between calls to Next, and a splice that
// shifts bytes at or after the cursor's current position must be reported
// back with Rebase before the next call.
type Cursor struct {
	buf []byte
	pos int
	end int
}

// NewCursor starts a cursor at the beginning of parent's content range.
func NewCursor(buf []byte, parent HeaderView) *Cursor {
	return &Cursor{buf: buf, pos: parent.ContentStart, end: parent.ContentEnd}
}

// Next decodes the next sibling record, advancing the cursor by its size.
// It returns ok == false once the parent's content range is exhausted. A
// child declaring size == 0, or one whose size would overrun the parent's
// content end, is reported as ErrCorruptStructure to guarantee termination.
func (c *Cursor) Next() (HeaderView, bool, error) {
	if c.pos >= c.end {
		return HeaderView{}, false, nil
	}

	if c.pos+7 <= len(c.buf) {
		size := int(binary.BigEndian.Uint32(c.buf[c.pos+3 : c.pos+7]))
		if size == 0 || c.pos+size > c.end {
			return HeaderView{}, false, ErrCorruptStructure
		}
	}

	child, err := DecodeHeaderAt(c.buf, c.pos)
	if err != nil {
		return HeaderView{}, false, err
	}

	c.pos += int(child.Size)
	return child, true, nil
}

// Rebase must be called after any splice whose range lies at or before the
// cursor's current position: buf is the buffer's new backing slice, and
// delta is the signed byte-length change the splice introduced. It keeps
// the cursor's bookkeeping consistent with the shifted layout without
// re-decoding from the start of the parent.
func (c *Cursor) Rebase(buf []byte, delta int) {
	c.buf = buf
	c.pos += delta
	c.end += delta
}

// FindChild iterates parent's direct children looking for one with the
// given key. When expectedType != TypeAny, children of a different type are
// skipped. If no child matches, the returned HeaderView has Found == false
// and Key set to the requested key.
func FindChild(buf []byte, parent HeaderView, key string, expectedType RecordType) (HeaderView, error) {
	cur := NewCursor(buf, parent)
	for {
		child, ok, err := cur.Next()
		if err != nil {
			return HeaderView{}, err
		}
		if !ok {
			return HeaderView{Found: false, Key: key}, nil
		}
		if expectedType != TypeAny && child.Type != expectedType {
			continue
		}
		if child.Key == key {
			return child, nil
		}
	}
}
