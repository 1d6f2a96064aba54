package jrdb

import "github.com/jrdb-go/jrdb/storage"

// applyInsert resolves act's target collection, creating it as an empty
// Collection record appended to root if it doesn't exist yet, then appends
// the staged document as a new child keyed by the next sequence number.
func (db *Database) applyInsert(act *action) error {
	root, err := storage.DecodeHeaderAt(db.buf.Bytes(), 0)
	if err != nil {
		return err
	}

	collKey := collectionKey(act.from)
	coll, err := storage.FindChild(db.buf.Bytes(), root, collKey, storage.TypeCollection)
	if err != nil {
		return err
	}

	if !coll.Found {
		header := storage.EncodeHeader(root.Depth+1, storage.TypeCollection, collKey, 0)
		offset := root.ContentEnd
		db.buf.Splice(offset, offset, header)
		storage.PropagateSizeDelta(db.buf.Bytes(), []*storage.HeaderView{&root}, len(header))

		coll, err = storage.DecodeHeaderAt(db.buf.Bytes(), offset)
		if err != nil {
			return err
		}
	}

	childKey := sequenceKey(int(coll.Count) + 1)
	content, err := encodeDocumentContent(act.doc, coll.Depth+2)
	if err != nil {
		return err
	}
	rec := buildRecord(storage.TypeDocument, coll.Depth+1, childKey, content)

	offset := coll.ContentEnd
	db.buf.Splice(offset, offset, rec)
	storage.PropagateSizeDelta(db.buf.Bytes(), []*storage.HeaderView{&coll, &root}, len(rec))
	storage.WriteCount(db.buf.Bytes(), coll.HeaderStart, coll.Count+1)

	return nil
}
