package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailund/stralg-go/pkg/search/alphabet"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ab := alphabet.New("abc")
	assert.True(t, ab.Contains('a'))
	assert.False(t, ab.Contains('d'))
	assert.Equal(t, 3, ab.Len())

	idx, ok := ab.Index('b')
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = ab.Index('d')
	assert.False(t, ok)
}

func TestNewDeduplicates(t *testing.T) {
	t.Parallel()

	// first appearance wins: a b r c d
	ab := alphabet.New("abracadabra")
	assert.Equal(t, 5, ab.Len())

	idx, ok := ab.Index('a')
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = ab.Index('d')
	assert.True(t, ok)
	assert.Equal(t, 5, idx)
}

func TestFromStrings(t *testing.T) {
	t.Parallel()

	ab := alphabet.FromStrings("hello", "world")
	// unique characters: h e l o w r d
	assert.Equal(t, 7, ab.Len())
	for _, r := range "helowrd" {
		assert.True(t, ab.Contains(r), "expected %q in alphabet", r)
	}

	idx, ok := ab.Index('h')
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRune(t *testing.T) {
	t.Parallel()

	ab := alphabet.New("abc")

	r, ok := ab.Rune(2)
	assert.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = ab.Rune(0) // the sentinel has no rune
	assert.False(t, ok)
	_, ok = ab.Rune(4)
	assert.False(t, ok)
}
