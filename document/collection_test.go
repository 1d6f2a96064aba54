package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionAddAndAt(t *testing.T) {
	col := NewCollection()
	assert.Equal(t, 0, col.Len())

	col.Add(NewDocument().SetString("name", "Joel"))
	col.Add(NewDocument().SetString("name", "Mathew"))

	assert.Equal(t, 2, col.Len())
	name, _ := col.At(0).Get("name")
	s, _ := name.String()
	assert.Equal(t, "Joel", s)

	all := col.All()
	assert.Len(t, all, 2)
}
