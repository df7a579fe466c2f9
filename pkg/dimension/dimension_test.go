package dimension

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAll_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range All() {
		assert.False(t, seen[d.String()], "duplicate dimension %s", d)
		seen[d.String()] = true
	}
	assert.Len(t, seen, 7)
}

func TestLookup(t *testing.T) {
	for _, d := range All() {
		got, ok := Lookup(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := Lookup("velocity")
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Length", TypeName(Length{}))
	assert.Equal(t, "Intensity", TypeName(Intensity{}))
	assert.Equal(t, "", TypeName(nil))
}

func TestTagsAreZeroSized(t *testing.T) {
	assert.Zero(t, unsafe.Sizeof(Length{}))
	assert.Zero(t, unsafe.Sizeof(Mass{}))
	assert.Zero(t, unsafe.Sizeof(Intensity{}))
}
