// Package jrdb implements an embedded, single-file document database: a
// process opens a named database file and issues insert, select, update,
// and delete operations against named collections of schemaless documents.
//
// The file is a single contiguous byte image holding a rooted tree of
// length-prefixed records (see package storage); every mutation splices
// bytes in place and propagates the new length up to the root, then
// rewrites the whole file to disk. There is no journal, no concurrent
// writer support, and no query optimizer — actions are staged on a
// Database and applied strictly in the order they were enqueued.
package jrdb

import (
	"path/filepath"
	"strings"

	"github.com/jrdb-go/jrdb/condition"
	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// Database is an open handle to a <name>.db file plus a queue of pending
// actions. It owns the byte buffer backing the file; HeaderViews derived
// from it are transient snapshots that must be re-derived after any splice.
type Database struct {
	fileName string
	dir      string
	buf      *storage.Buffer
	actions  []*action
}

// OpenOption configures a Database at Open time.
type OpenOption func(*Database)

// WithDir places the database file under dir instead of the current
// working directory.
func WithDir(dir string) OpenOption {
	return func(db *Database) { db.dir = dir }
}

// Open opens the named database, creating <name>.db (under dir, if
// WithDir was given) with a fresh root record if it does not already
// exist.
func Open(name string, opts ...OpenOption) (*Database, error) {
	db := &Database{fileName: name}
	for _, opt := range opts {
		opt(db)
	}

	data, err := readOrInit(db.path())
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}

	db.buf = storage.NewBuffer(data)
	return db, nil
}

func (db *Database) path() string {
	if db.dir == "" {
		return db.fileName + ".db"
	}
	return filepath.Join(db.dir, db.fileName+".db")
}

// collectionKey resolves the collection name an action targets. A target
// may carry a "."-separated qualifier suffix that this engine does not
// interpret; only the segment before the first "." is used to look up the
// collection.
func collectionKey(from string) string {
	if i := strings.IndexByte(from, '.'); i >= 0 {
		return from[:i]
	}
	return from
}

// Insert stages an insert of doc into collection, creating the collection
// if it does not exist. Returns the Database for chaining.
func (db *Database) Insert(collection string, doc *document.Document) *Database {
	db.enqueue(&action{kind: actionInsert, from: collection, cond: condition.True(), doc: doc})
	return db
}

// Select stages a select over collection. Returns the Database for
// chaining.
func (db *Database) Select(collection string) *Database {
	db.enqueue(&action{kind: actionSelect, from: collection, cond: condition.True()})
	return db
}

// Update stages an update of every matching document in collection,
// setting each field named in patch. Returns the Database for chaining.
func (db *Database) Update(collection string, patch *document.Document) *Database {
	db.enqueue(&action{kind: actionUpdate, from: collection, cond: condition.True(), doc: patch})
	return db
}

// Delete stages a delete of every matching document in collection.
// Returns the Database for chaining.
func (db *Database) Delete(collection string) *Database {
	db.enqueue(&action{kind: actionDelete, from: collection, cond: condition.True()})
	return db
}

// Condition attaches cond to the most recently staged action, replacing its
// default identity-true condition. Returns the Database for chaining.
func (db *Database) Condition(cond condition.Condition) *Database {
	if len(db.actions) > 0 {
		db.actions[len(db.actions)-1].cond = cond
	}
	return db
}

func (db *Database) enqueue(a *action) {
	db.actions = append(db.actions, a)
}

// Execute drains the pending action queue in FIFO order, applying each
// against the byte buffer and persisting to disk after every mutating
// action. It returns the in-memory collection produced by the last select
// action executed, or an empty collection if none was.
func (db *Database) Execute() (*document.Collection, error) {
	pending := db.actions
	db.actions = nil

	result := document.NewCollection()

	for _, act := range pending {
		switch act.kind {
		case actionInsert:
			if err := db.applyInsert(act); err != nil {
				return result, err
			}
			if err := db.persist(); err != nil {
				return result, err
			}
		case actionSelect:
			col, err := db.applySelect(act)
			if err != nil {
				return result, err
			}
			result = col
		case actionUpdate:
			if err := db.applyUpdate(act); err != nil {
				return result, err
			}
			if err := db.persist(); err != nil {
				return result, err
			}
		case actionDelete:
			if err := db.applyDelete(act); err != nil {
				return result, err
			}
			if err := db.persist(); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}
