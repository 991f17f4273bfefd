package uid

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLengthAndAlphabet(t *testing.T) {
	for range 100 {
		id := New()
		assert.Len(t, id, idLength)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(soup, c), "unexpected character %q", c)
		}
	}
}

func TestNewWithRandDeterministic(t *testing.T) {
	a := NewWithRand(rand.New(rand.NewPCG(1, 2)))
	b := NewWithRand(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)

	c := NewWithRand(rand.New(rand.NewPCG(3, 4)))
	assert.NotEqual(t, a, c)
}
