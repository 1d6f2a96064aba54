package jrdb

import "github.com/jrdb-go/jrdb/storage"

// applyDelete resolves act's target collection and splices out every child
// document matching act's condition entirely. Per the on-disk contract, the
// collection's count field is never decremented: it remains a monotonic
// next-id counter, not a live child count, so surviving siblings keep their
// originally assigned sequence numbers.
func (db *Database) applyDelete(act *action) error {
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

		delta := -int(child.Size)
		db.buf.Splice(child.HeaderStart, child.ContentEnd, nil)
		storage.PropagateSizeDelta(db.buf.Bytes(), []*storage.HeaderView{&coll, &root}, delta)
		cur.Rebase(db.buf.Bytes(), delta)
	}

	return nil
}
