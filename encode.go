package jrdb

import (
	"encoding/binary"

	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// buildRecord assembles a complete record: header followed by content.
func buildRecord(t storage.RecordType, depth uint8, key string, content []byte) []byte {
	header := storage.EncodeHeader(depth, t, key, uint32(len(content)))
	out := make([]byte, 0, len(header)+len(content))
	out = append(out, header...)
	out = append(out, content...)
	return out
}

// encodeScalarContent returns the raw content bytes for an Int64 or String
// value, and the record type that holds it.
func encodeScalarContent(v document.Value) (storage.RecordType, []byte, error) {
	switch v.Kind() {
	case document.KindInt64:
		n, _ := v.Int64()
		content := make([]byte, 8)
		binary.BigEndian.PutUint64(content, uint64(n))
		return storage.TypeInt64, content, nil
	case document.KindString:
		s, _ := v.String()
		return storage.TypeString, []byte(s), nil
	default:
		return 0, nil, ErrUnsupportedValue
	}
}

// encodeValue encodes a single field's value into a complete child record
// at the given depth and key, recursing into nested Document/Collection
// values as needed.
func encodeValue(v document.Value, depth uint8, key string) ([]byte, error) {
	switch v.Kind() {
	case document.KindInt64, document.KindString:
		t, content, err := encodeScalarContent(v)
		if err != nil {
			return nil, err
		}
		return buildRecord(t, depth, key, content), nil

	case document.KindDocument:
		d, _ := v.Document()
		content, err := encodeDocumentContent(d, depth+1)
		if err != nil {
			return nil, err
		}
		return buildRecord(storage.TypeDocument, depth, key, content), nil

	case document.KindCollection:
		c, _ := v.Collection()
		content, err := encodeCollectionContent(c, depth+1)
		if err != nil {
			return nil, err
		}
		return buildRecord(storage.TypeCollection, depth, key, content), nil

	default:
		return nil, ErrUnsupportedValue
	}
}

// encodeDocumentContent encodes a document's fields, in their iteration
// order, as the concatenation of their child records.
func encodeDocumentContent(doc *document.Document, depth uint8) ([]byte, error) {
	var out []byte
	for f := range doc.Fields() {
		rec, err := encodeValue(f.Value, depth, f.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)
	}
	return out, nil
}

// encodeCollectionContent encodes a collection's documents as child Document
// records keyed by their 1-based decimal sequence number.
func encodeCollectionContent(col *document.Collection, depth uint8) ([]byte, error) {
	var out []byte
	for i, doc := range col.All() {
		content, err := encodeDocumentContent(doc, depth+1)
		if err != nil {
			return nil, err
		}
		rec := buildRecord(storage.TypeDocument, depth, sequenceKey(i+1), content)
		out = append(out, rec...)
	}
	return out, nil
}
