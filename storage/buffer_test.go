package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferSplice(t *testing.T) {
	tests := []struct {
		name    string
		initial []byte
		start   int
		end     int
		payload []byte
		want    []byte
	}{
		{"replace middle", []byte("hello world"), 6, 11, []byte("there"), []byte("hello there")},
		{"insert at end", []byte("abc"), 3, 3, []byte("def"), []byte("abcdef")},
		{"delete range", []byte("abcdef"), 2, 4, nil, []byte("abef")},
		{"replace all", []byte("abc"), 0, 3, []byte("xy"), []byte("xy")},
		{"grow in place", []byte("ac"), 1, 1, []byte("b"), []byte("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(append([]byte(nil), tt.initial...))
			b.Splice(tt.start, tt.end, tt.payload)
			assert.Equal(t, tt.want, b.Bytes())
		})
	}
}

func TestBufferAppend(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	offset := b.Append([]byte("def"))
	assert.Equal(t, 3, offset)
	assert.Equal(t, []byte("abcdef"), b.Bytes())
}

func TestBufferSpliceDoesNotAliasOriginal(t *testing.T) {
	original := []byte("abcdef")
	b := NewBuffer(original)
	b.Splice(2, 4, []byte("XY"))
	assert.Equal(t, []byte("abXYef"), b.Bytes())
	assert.Equal(t, []byte("abcdef"), original)
}
