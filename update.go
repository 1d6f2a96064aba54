package jrdb

import (
	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// applyUpdate resolves act's target collection and, for every child
// document matching act's condition, splices in each field named by the
// staged patch document.
func (db *Database) applyUpdate(act *action) error {
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
		return nil
	}

	cur := storage.NewCursor(db.buf.Bytes(), coll)
	for {
		child, ok, err := cur.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		doc, err := materializeDocument(db.buf.Bytes(), child)
		if err != nil {
			return err
		}
		if !act.cond.Eval(doc) {
			continue
		}

		if err := db.applyPatch(&root, &coll, &child, cur, act.doc); err != nil {
			return err
		}
	}

	return nil
}

// applyPatch splices each field of patch into target, in place of an
// existing field of the same key if one exists, or appended to target's
// content otherwise. Each splice's byte-length delta is propagated up
// through target, coll, and root, and reported to collCur so the
// collection-level cursor stays aligned with the shifted layout.
func (db *Database) applyPatch(
	root, coll, target *storage.HeaderView,
	collCur *storage.Cursor,
	patch *document.Document,
) error {
	for f := range patch.Fields() {
		if f.Value.Kind() == document.KindDocument || f.Value.Kind() == document.KindCollection {
			return ErrUnsupportedPatchType
		}

		recordType, content, err := encodeScalarContent(f.Value)
		if err != nil {
			return err
		}
		newField := buildRecord(recordType, target.Depth+1, f.Key, content)

		existing, err := storage.FindChild(db.buf.Bytes(), *target, f.Key, storage.TypeAny)
		if err != nil {
			return err
		}

		var delta int
		if existing.Found {
			delta = len(newField) - (existing.ContentEnd - existing.HeaderStart)
			db.buf.Splice(existing.HeaderStart, existing.ContentEnd, newField)
		} else {
			delta = len(newField)
			db.buf.Splice(target.ContentEnd, target.ContentEnd, newField)
		}

		storage.PropagateSizeDelta(db.buf.Bytes(), []*storage.HeaderView{target, coll, root}, delta)
		collCur.Rebase(db.buf.Bytes(), delta)
	}

	return nil
}
