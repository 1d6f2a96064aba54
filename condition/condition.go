// Package condition implements the Boolean expression tree documents are
// filtered by: conjunctions and disjunctions over leaf comparisons, with
// the value-coercion rules used to compare a field reference, a quoted
// string literal, or a numeric literal.
package condition

import (
	"strconv"
	"strings"

	"github.com/jrdb-go/jrdb/document"
)

// Kind identifies a condition node's operator.
type Kind int

const (
	KindAnd Kind = iota
	KindOr
	KindEq
	KindNEq
	KindGt
	KindNGt
	KindGtE
	KindNGtE
	KindSt
	KindNSt
	KindStE
	KindNStE
)

// Condition is a node in a Boolean expression tree: And/Or combine child
// conditions, while the comparison kinds evaluate a pair of operand
// strings against a document.
type Condition struct {
	kind     Kind
	children []Condition
	left     string
	right    string
}

// Eval evaluates the condition against doc.
func (c Condition) Eval(doc *document.Document) bool {
	switch c.kind {
	case KindAnd:
		for _, child := range c.children {
			if !child.Eval(doc) {
				return false
			}
		}
		return true
	case KindOr:
		for _, child := range c.children {
			if child.Eval(doc) {
				return true
			}
		}
		return false
	default:
		return evalLeaf(c.kind, c.left, c.right, doc)
	}
}

// operand is an operand resolved to its comparable typed value.
type operand struct {
	isString bool
	s        string
	i        int64
}

// resolveOperand implements the operand-resolution rule: a single-quoted
// literal is a String, a string that parses as a signed decimal integer is
// an Int64, and anything else is a field reference looked up in doc. An
// unresolved field reference (missing, or of a non-comparable kind) reports
// ok == false so the caller treats the leaf as false rather than erroring.
func resolveOperand(op string, doc *document.Document) (operand, bool) {
	if len(op) >= 2 && op[0] == '\'' && op[len(op)-1] == '\'' {
		return operand{isString: true, s: op[1 : len(op)-1]}, true
	}

	if n, err := strconv.ParseInt(op, 10, 64); err == nil {
		return operand{i: n}, true
	}

	v, found := doc.Get(op)
	if !found {
		return operand{}, false
	}

	switch v.Kind() {
	case document.KindInt64:
		n, _ := v.Int64()
		return operand{i: n}, true
	case document.KindString:
		s, _ := v.String()
		return operand{isString: true, s: s}, true
	default:
		return operand{}, false
	}
}

// compare returns a negative, zero, or positive number as l is less than,
// equal to, or greater than r. If either side is a string, the other side
// is stringified (an Int64 as its decimal form) and both compare as
// strings; otherwise both are compared as signed 64-bit integers.
func compare(l, r operand) int {
	if l.isString || r.isString {
		ls, rs := l.s, r.s
		if !l.isString {
			ls = strconv.FormatInt(l.i, 10)
		}
		if !r.isString {
			rs = strconv.FormatInt(r.i, 10)
		}
		return strings.Compare(ls, rs)
	}

	switch {
	case l.i < r.i:
		return -1
	case l.i > r.i:
		return 1
	default:
		return 0
	}
}

func evalLeaf(kind Kind, left, right string, doc *document.Document) bool {
	l, ok := resolveOperand(left, doc)
	if !ok {
		return false
	}
	r, ok := resolveOperand(right, doc)
	if !ok {
		return false
	}

	cmp := compare(l, r)

	switch kind {
	case KindEq:
		return cmp == 0
	case KindNEq:
		return cmp != 0
	case KindGt:
		return cmp > 0
	case KindNGt:
		return cmp <= 0
	case KindGtE:
		return cmp >= 0
	case KindNGtE:
		return cmp < 0
	case KindSt:
		return cmp < 0
	case KindNSt:
		return cmp >= 0
	case KindStE:
		return cmp <= 0
	case KindNStE:
		return cmp > 0
	default:
		return false
	}
}
