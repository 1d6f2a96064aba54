package jrdb

import (
	"github.com/jrdb-go/jrdb/condition"
	"github.com/jrdb-go/jrdb/document"
)

type actionKind int

const (
	actionInsert actionKind = iota
	actionSelect
	actionUpdate
	actionDelete

	// actionUpdateForce is reserved for a forced-update variant that is not
	// wired to any public Database method. No method constructs it; it is
	// kept here so the enum documents the gap instead of silently dropping
	// it.
	actionUpdateForce
)

// action is a staged insert/select/update/delete, optionally narrowed by a
// condition.
type action struct {
	kind actionKind
	from string
	cond condition.Condition
	doc  *document.Document
}
