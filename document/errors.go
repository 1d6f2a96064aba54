package document

import "errors"

// ErrKeyNotFound is returned by the typed field accessors (GetString,
// GetInt64, GetDocument, GetCollection) when the key is absent.
var ErrKeyNotFound = errors.New("jrdb: key not found")

// ErrTypeMismatch is returned by the typed field accessors when the key is
// present but holds a value of a different kind than requested.
var ErrTypeMismatch = errors.New("jrdb: type mismatch")
