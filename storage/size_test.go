package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateSizeDelta(t *testing.T) {
	child := buildStringField(1, "a", "1")
	buf := buildDoc(child)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	cur := NewCursor(buf, root)
	fieldView, ok, err := cur.Next()
	require.NoError(t, err)
	require.True(t, ok)

	b := NewBuffer(buf)
	// Widen the field's value from "1" to "100", a delta of +2 bytes.
	b.Splice(fieldView.ContentStart, fieldView.ContentEnd, []byte("100"))

	PropagateSizeDelta(b.Bytes(), []*HeaderView{&fieldView, &root}, 2)

	assert.Equal(t, uint32(11), fieldView.Size)
	assert.Equal(t, uint32(22), root.Size)

	reDecodedRoot, err := DecodeHeaderAt(b.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, root.Size, reDecodedRoot.Size)
	assert.Equal(t, b.Len(), int(reDecodedRoot.Size))

	reDecodedField, err := DecodeHeaderAt(b.Bytes(), fieldView.HeaderStart)
	require.NoError(t, err)
	assert.Equal(t, fieldView.Size, reDecodedField.Size)
	assert.Equal(t, "100", string(b.Bytes()[reDecodedField.ContentStart:reDecodedField.ContentEnd]))
}

func TestWriteCount(t *testing.T) {
	header := EncodeHeader(1, TypeCollection, "users", 0)
	WriteCount(header, 0, 3)

	view, err := DecodeHeaderAt(header, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), view.Count)
}
