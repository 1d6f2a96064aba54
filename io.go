package jrdb

import (
	"errors"
	"os"
)

// freshRoot is the byte image of an empty database: a single Document
// record named "root" at depth 0 with no fields.
var freshRoot = []byte{0, 0, 4, 0, 0, 0, 11, 'r', 'o', 'o', 't'}

// readOrInit reads the database file at path, creating it with a fresh
// root record if it does not yet exist.
func readOrInit(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	init := append([]byte(nil), freshRoot...)
	if err := os.WriteFile(path, init, 0o644); err != nil {
		return nil, err
	}
	return init, nil
}

// persist rewrites the entire database file with the current buffer
// contents. The engine has no journal: every mutating action persists by
// overwriting the whole file, never appending or patching it in place on
// disk.
func (db *Database) persist() error {
	if err := os.WriteFile(db.path(), db.buf.Bytes(), 0o644); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
