package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		recordType  RecordType
		depth       uint8
		key         string
		contentSize uint32
	}{
		{"document", TypeDocument, 1, "name", 12},
		{"string field", TypeString, 2, "pass", 8},
		{"int64 field", TypeInt64, 2, "age", 8},
		{"collection", TypeCollection, 1, "users", 0},
		{"empty key", TypeDocument, 0, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := EncodeHeader(tt.depth, tt.recordType, tt.key, tt.contentSize)

			buf := append(append([]byte(nil), header...), make([]byte, tt.contentSize)...)

			got, err := DecodeHeaderAt(buf, 0)
			require.NoError(t, err)

			assert.Equal(t, tt.depth, got.Depth)
			assert.Equal(t, tt.recordType, got.Type)
			assert.Equal(t, tt.key, got.Key)
			assert.Equal(t, tt.contentSize, uint32(got.ContentEnd-got.ContentStart))
			assert.Equal(t, len(buf), got.ContentEnd)
			assert.Equal(t, len(header), got.ContentStart)
			if tt.recordType == TypeCollection {
				assert.Equal(t, uint32(0), got.Count)
			}
		})
	}
}

func TestDecodeHeaderAtCorrupt(t *testing.T) {
	t.Run("truncated before size", func(t *testing.T) {
		_, err := DecodeHeaderAt([]byte{0, 0, 4}, 0)
		assert.ErrorIs(t, err, ErrCorruptHeader)
	})

	t.Run("truncated collection count", func(t *testing.T) {
		buf := []byte{0, 1, 0, 0, 0, 0, 11}
		_, err := DecodeHeaderAt(buf, 0)
		assert.ErrorIs(t, err, ErrCorruptHeader)
	})

	t.Run("content end beyond buffer", func(t *testing.T) {
		buf := EncodeHeader(0, TypeDocument, "root", 100)
		_, err := DecodeHeaderAt(buf, 0)
		assert.ErrorIs(t, err, ErrCorruptHeader)
	})

	t.Run("invalid utf8 key", func(t *testing.T) {
		buf := []byte{0, 0, 1, 0, 0, 0, 8, 0xff}
		_, err := DecodeHeaderAt(buf, 0)
		assert.ErrorIs(t, err, ErrCorruptHeader)
	})
}

func TestFreshRootBytes(t *testing.T) {
	root := []byte{0, 0, 4, 0, 0, 0, 11, 'r', 'o', 'o', 't'}

	got, err := DecodeHeaderAt(root, 0)
	require.NoError(t, err)

	assert.Equal(t, "root", got.Key)
	assert.Equal(t, TypeDocument, got.Type)
	assert.Equal(t, uint8(0), got.Depth)
	assert.Equal(t, uint32(11), got.Size)
	assert.Equal(t, 11, got.ContentStart)
	assert.Equal(t, 11, got.ContentEnd)
}
