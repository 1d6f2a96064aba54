package jrdb

import (
	"encoding/binary"

	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// decodeFieldValue decodes the value held by a single field record. String
// and Int64 decode directly; Document and Collection recurse. This goes
// beyond the Select operation's minimum contract (spec.md scopes Select to
// just String/Int64 fields and calls nested decoding an extension point) so
// that a round-tripped document carrying nested values reads back whole.
func decodeFieldValue(buf []byte, field storage.HeaderView) (document.Value, error) {
	switch field.Type {
	case storage.TypeString:
		return document.String(string(buf[field.ContentStart:field.ContentEnd])), nil

	case storage.TypeInt64:
		if field.ContentEnd-field.ContentStart != 8 {
			return document.Value{}, ErrCorruptStructure
		}
		n := int64(binary.BigEndian.Uint64(buf[field.ContentStart:field.ContentEnd]))
		return document.Int64(n), nil

	case storage.TypeDocument:
		nested := document.NewDocument()
		if err := decodeDocumentFields(buf, field, nested); err != nil {
			return document.Value{}, err
		}
		return document.DocumentValue(nested), nil

	case storage.TypeCollection:
		nested := document.NewCollection()
		cur := storage.NewCursor(buf, field)
		for {
			child, ok, err := cur.Next()
			if err != nil {
				return document.Value{}, err
			}
			if !ok {
				break
			}
			childDoc := document.NewDocument()
			if err := decodeDocumentFields(buf, child, childDoc); err != nil {
				return document.Value{}, err
			}
			nested.Add(childDoc)
		}
		return document.CollectionValue(nested), nil

	default:
		return document.Value{}, ErrCorruptHeader
	}
}

// decodeDocumentFields fills doc with every direct field of the Document
// record described by header.
func decodeDocumentFields(buf []byte, header storage.HeaderView, doc *document.Document) error {
	cur := storage.NewCursor(buf, header)
	for {
		field, ok, err := cur.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		v, err := decodeFieldValue(buf, field)
		if err != nil {
			return err
		}
		doc.Set(field.Key, v)
	}
	return nil
}

// materializeDocument decodes a collection child (a Document record) into
// an in-memory Document, attaching the synthetic "_id" field equal to the
// child's key (its decimal sequence number).
func materializeDocument(buf []byte, header storage.HeaderView) (*document.Document, error) {
	doc := document.NewDocument()
	doc.Set("_id", document.String(header.Key))
	if err := decodeDocumentFields(buf, header, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
