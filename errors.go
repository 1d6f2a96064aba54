package jrdb

import (
	"errors"
	"fmt"

	"github.com/jrdb-go/jrdb/document"
	"github.com/jrdb-go/jrdb/storage"
)

// ErrCorruptHeader and ErrCorruptStructure are re-exported from the storage
// package so callers of the top-level API don't need to import it directly
// to check error identity. ErrKeyNotFound and ErrTypeMismatch are
// re-exported from the document package for the same reason.
var (
	ErrCorruptHeader    = storage.ErrCorruptHeader
	ErrCorruptStructure = storage.ErrCorruptStructure
	ErrKeyNotFound      = document.ErrKeyNotFound
	ErrTypeMismatch     = document.ErrTypeMismatch
)

var (
	// ErrUnsupportedPatchType is returned by Execute when a staged Update's
	// patch document carries a nested Document or Collection value; the on-disk update
	// path only supports replacing scalar (Int64/String) fields.
	ErrUnsupportedPatchType = errors.New("jrdb: unsupported patch value type")

	// ErrUnsupportedValue is returned by the encoder for a Value whose
	// Kind does not match any of the four known alternatives. It cannot
	// occur through the public document API, which only ever produces
	// Values tagged by Int64, String, DocumentValue, or CollectionValue.
	ErrUnsupportedValue = errors.New("jrdb: unsupported value kind")
)

// IOError wraps a failure from the file I/O shim (open, read, or write of
// the database file) with the operation that failed.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("jrdb: io error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
