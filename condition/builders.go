package condition

// And returns a condition that holds when every child condition holds. An
// empty conjunction is true.
func And(conds ...Condition) Condition {
	return Condition{kind: KindAnd, children: conds}
}

// Or returns a condition that holds when any child condition holds. An
// empty disjunction is false.
func Or(conds ...Condition) Condition {
	return Condition{kind: KindOr, children: conds}
}

func leaf(kind Kind, left, right string) Condition {
	return Condition{kind: kind, left: left, right: right}
}

// Eq builds a left == right condition.
func Eq(left, right string) Condition { return leaf(KindEq, left, right) }

// NEq builds a left != right condition.
func NEq(left, right string) Condition { return leaf(KindNEq, left, right) }

// Gt builds a left > right condition.
func Gt(left, right string) Condition { return leaf(KindGt, left, right) }

// NGt builds a !(left > right) condition.
func NGt(left, right string) Condition { return leaf(KindNGt, left, right) }

// GtE builds a left >= right condition.
func GtE(left, right string) Condition { return leaf(KindGtE, left, right) }

// NGtE builds a !(left >= right) condition.
func NGtE(left, right string) Condition { return leaf(KindNGtE, left, right) }

// St builds a left < right condition ("strictly less").
func St(left, right string) Condition { return leaf(KindSt, left, right) }

// NSt builds a !(left < right) condition.
func NSt(left, right string) Condition { return leaf(KindNSt, left, right) }

// StE builds a left <= right condition.
func StE(left, right string) Condition { return leaf(KindStE, left, right) }

// NStE builds a !(left <= right) condition.
func NStE(left, right string) Condition { return leaf(KindNStE, left, right) }

// True returns the identity-true condition used as an action's default: an
// Eq comparing the empty string literal against itself.
func True() Condition {
	return Eq("''", "''")
}
