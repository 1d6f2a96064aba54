package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDoc assembles a Document record at depth 0 named "root" whose
// content is the concatenation of the given pre-built child records.
func buildDoc(children ...[]byte) []byte {
	var content []byte
	for _, c := range children {
		content = append(content, c...)
	}
	header := EncodeHeader(0, TypeDocument, "root", uint32(len(content)))
	return append(header, content...)
}

func buildStringField(depth uint8, key, value string) []byte {
	header := EncodeHeader(depth, TypeString, key, uint32(len(value)))
	return append(header, value...)
}

func TestCursorIterChildren(t *testing.T) {
	buf := buildDoc(
		buildStringField(1, "a", "1"),
		buildStringField(1, "bb", "22"),
		buildStringField(1, "ccc", "333"),
	)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	cur := NewCursor(buf, root)
	var keys []string
	for {
		child, ok, err := cur.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		keys = append(keys, child.Key)
	}

	assert.Equal(t, []string{"a", "bb", "ccc"}, keys)
}

func TestCursorOverrunIsCorruptStructure(t *testing.T) {
	child := buildStringField(1, "a", "1")
	// Claim a size larger than the parent's content actually holds.
	child[3] = 0
	child[4] = 0
	child[5] = 0
	child[6] = 200

	buf := buildDoc(child)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	cur := NewCursor(buf, root)
	_, _, err = cur.Next()
	assert.ErrorIs(t, err, ErrCorruptStructure)
}

func TestCursorZeroSizeIsCorruptStructure(t *testing.T) {
	child := buildStringField(1, "a", "1")
	child[3], child[4], child[5], child[6] = 0, 0, 0, 0

	buf := buildDoc(child)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	cur := NewCursor(buf, root)
	_, _, err = cur.Next()
	assert.ErrorIs(t, err, ErrCorruptStructure)
}

func TestFindChild(t *testing.T) {
	buf := buildDoc(
		buildStringField(1, "name", "Joel"),
		buildStringField(1, "pass", "ILoveErd"),
	)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	found, err := FindChild(buf, root, "pass", TypeString)
	require.NoError(t, err)
	assert.True(t, found.Found)
	assert.Equal(t, "pass", found.Key)

	missing, err := FindChild(buf, root, "age", TypeAny)
	require.NoError(t, err)
	assert.False(t, missing.Found)
	assert.Equal(t, "age", missing.Key)

	wrongType, err := FindChild(buf, root, "name", TypeInt64)
	require.NoError(t, err)
	assert.False(t, wrongType.Found)
}

func TestCursorRebase(t *testing.T) {
	buf := buildDoc(
		buildStringField(1, "a", "1"),
		buildStringField(1, "bb", "22"),
	)

	root, err := DecodeHeaderAt(buf, 0)
	require.NoError(t, err)

	cur := NewCursor(buf, root)
	first, ok, err := cur.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", first.Key)

	// Simulate growing the first field by 3 bytes in place.
	grown := make([]byte, len(buf)+3)
	copy(grown, buf[:first.ContentEnd])
	copy(grown[first.ContentEnd+3:], buf[first.ContentEnd:])
	cur.Rebase(grown, 3)

	second, ok, err := cur.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bb", second.Key)
}
