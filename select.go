package jrdb

import (
	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// applySelect resolves act's target collection and returns the in-memory
// collection of every child document that matches act's condition. A
// missing collection yields an empty result without touching the buffer.
func (db *Database) applySelect(act *action) (*document.Collection, error) {
	bufBytes := db.buf.Bytes()

	root, err := storage.DecodeHeaderAt(bufBytes, 0)
	if err != nil {
		return nil, err
	}

	collKey := collectionKey(act.from)
	coll, err := storage.FindChild(bufBytes, root, collKey, storage.TypeCollection)
	if err != nil {
		return nil, err
	}

	result := document.NewCollection()
	if !coll.Found {
		return result, nil
	}

	cur := storage.NewCursor(bufBytes, coll)
	for {
		child, ok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		doc, err := materializeDocument(bufBytes, child)
		if err != nil {
			return nil, err
		}

		if act.cond.Eval(doc) {
			result.Add(doc)
		}
	}

	return result, nil
}
