package document

// Document is an ordered mapping from string keys to typed Values. Fields
// iterate in sorted key order (see the design note on Document ordering),
// backed by a skip-list-based ordered map.
type Document struct {
	fields *orderedMap[string, Value]
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{fields: newOrderedMap[string, Value]()}
}

// Set assigns value to key, replacing any existing value under that key,
// and returns the Document for chaining.
func (d *Document) Set(key string, value Value) *Document {
	d.fields.Put(key, value)
	return d
}

// SetInt64 is a convenience wrapper around Set(key, Int64(n)).
func (d *Document) SetInt64(key string, n int64) *Document {
	return d.Set(key, Int64(n))
}

// SetString is a convenience wrapper around Set(key, String(s)).
func (d *Document) SetString(key string, s string) *Document {
	return d.Set(key, String(s))
}

// Get looks up the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	return d.fields.Get(key)
}

// GetString looks up key and requires it to hold a String value, returning
// ErrKeyNotFound or ErrTypeMismatch otherwise.
func (d *Document) GetString(key string) (string, error) {
	v, ok := d.fields.Get(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	s, ok := v.String()
	if !ok {
		return "", ErrTypeMismatch
	}
	return s, nil
}

// GetInt64 looks up key and requires it to hold an Int64 value, returning
// ErrKeyNotFound or ErrTypeMismatch otherwise.
func (d *Document) GetInt64(key string) (int64, error) {
	v, ok := d.fields.Get(key)
	if !ok {
		return 0, ErrKeyNotFound
	}
	n, ok := v.Int64()
	if !ok {
		return 0, ErrTypeMismatch
	}
	return n, nil
}

// GetDocument looks up key and requires it to hold a nested Document value,
// returning ErrKeyNotFound or ErrTypeMismatch otherwise.
func (d *Document) GetDocument(key string) (*Document, error) {
	v, ok := d.fields.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	nested, ok := v.Document()
	if !ok {
		return nil, ErrTypeMismatch
	}
	return nested, nil
}

// GetCollection looks up key and requires it to hold a nested Collection
// value, returning ErrKeyNotFound or ErrTypeMismatch otherwise.
func (d *Document) GetCollection(key string) (*Collection, error) {
	v, ok := d.fields.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	nested, ok := v.Collection()
	if !ok {
		return nil, ErrTypeMismatch
	}
	return nested, nil
}

// Len reports the number of fields in the document.
func (d *Document) Len() int {
	return d.fields.Len()
}

// Fields iterates the document's fields in sorted key order.
func (d *Document) Fields() func(yield func(Field) bool) {
	return func(yield func(Field) bool) {
		for k, v := range d.fields.Iterator() {
			if !yield(Field{Key: k, Value: v}) {
				return
			}
		}
	}
}

// Equal reports whether d and other hold the same set of keys mapped to
// equal scalar values, ignoring field order. Nested Document/Collection
// values are not compared (used by tests to compare flat field sets).
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for f := range d.Fields() {
		ov, ok := other.Get(f.Key)
		if !ok || ov.Kind() != f.Value.Kind() {
			return false
		}
		switch f.Value.Kind() {
		case KindInt64:
			a, _ := f.Value.Int64()
			b, _ := ov.Int64()
			if a != b {
				return false
			}
		case KindString:
			a, _ := f.Value.String()
			b, _ := ov.String()
			if a != b {
				return false
			}
		}
	}
	return true
}
