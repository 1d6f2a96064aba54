package storage

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"
)

// RecordType identifies the payload of a record.
type RecordType uint8

const (
	TypeDocument   RecordType = 0
	TypeCollection RecordType = 1
	TypeString     RecordType = 2
	TypeInt64      RecordType = 3

	// TypeAny is a wildcard passed to FindChild when the caller does not
	// want to filter children by type.
	TypeAny RecordType = 255
)

var (
	// ErrCorruptHeader is returned when a record header cannot be decoded:
	// out-of-range offsets, or invalid UTF-8 in the key.
	ErrCorruptHeader = errors.New("storage: corrupt record header")

	// ErrCorruptStructure is returned when sibling iteration would overrun
	// the parent's content bounds, or a child declares a zero size.
	ErrCorruptStructure = errors.New("storage: corrupt record structure")
)

// HeaderView is a decoded snapshot of a record's header plus the offsets
// derived from it. It is a value, not a live view: after any splice that
// could have moved the bytes it describes, a HeaderView must be re-derived
// or explicitly rebased (see PropagateSizeDelta and Cursor.Rebase).
type HeaderView struct {
	Found        bool
	Key          string
	HeaderStart  int
	ContentStart int
	ContentEnd   int
	Size         uint32
	Count        uint32
	Type         RecordType
	Depth        uint8
}

// headerLen returns the fixed header length for a record type: 11 bytes for
// a Collection (which carries a 4-byte count), 7 otherwise.
func headerLen(t RecordType) int {
	if t == TypeCollection {
		return 11
	}
	return 7
}

// EncodeHeader emits the header bytes for a record of the given type, depth
// and key, sized to hold contentSize bytes of payload. For a Collection
// record the count field is always written as zero; callers update it with
// WriteCount once children are appended.
func EncodeHeader(depth uint8, t RecordType, key string, contentSize uint32) []byte {
	hlen := headerLen(t)
	keyBytes := []byte(key)
	attrSize := uint32(hlen+len(keyBytes)) + contentSize

	out := make([]byte, 0, hlen+len(keyBytes))
	out = append(out, depth, byte(t), byte(len(keyBytes)))

	var sizeBytes [4]byte
	binary.BigEndian.PutUint32(sizeBytes[:], attrSize)
	out = append(out, sizeBytes[:]...)

	if t == TypeCollection {
		out = append(out, 0, 0, 0, 0)
	}

	out = append(out, keyBytes...)
	return out
}

// DecodeHeaderAt decodes the record header starting at offset p in buf and
// computes its derived content bounds.
func DecodeHeaderAt(buf []byte, p int) (HeaderView, error) {
	if p < 0 || p+7 > len(buf) {
		return HeaderView{}, ErrCorruptHeader
	}

	depth := buf[p]
	typ := RecordType(buf[p+1])
	keyLen := int(buf[p+2])
	size := binary.BigEndian.Uint32(buf[p+3 : p+7])

	var count uint32
	keyStart := p + 7
	if typ == TypeCollection {
		if p+11 > len(buf) {
			return HeaderView{}, ErrCorruptHeader
		}
		count = binary.BigEndian.Uint32(buf[p+7 : p+11])
		keyStart = p + 11
	}

	contentStart := keyStart + keyLen
	contentEnd := p + int(size)

	if contentStart > len(buf) || contentEnd > len(buf) || contentEnd < contentStart {
		return HeaderView{}, ErrCorruptHeader
	}

	key := buf[keyStart:contentStart]
	if !utf8.Valid(key) {
		return HeaderView{}, ErrCorruptHeader
	}

	return HeaderView{
		Found:        true,
		Key:          string(key),
		HeaderStart:  p,
		ContentStart: contentStart,
		ContentEnd:   contentEnd,
		Size:         size,
		Count:        count,
		Type:         typ,
		Depth:        depth,
	}, nil
}
