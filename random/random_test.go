package random

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew_SeedIsDeterministic(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	assert.NoError(t, err)
	b, err := NewSeed()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
