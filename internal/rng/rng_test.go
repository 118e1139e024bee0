package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	for i := 0; i < 5; i++ {
		a.True(found[i], "missing %d", i)
	}
	a.False(found[5])

	a.Panics(func() {
		c.Intn(0)
	})
}

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 20; i++ {
		a.Equal(s1.Intn(48), s2.Intn(48))
	}
}

type fixed int

func (f fixed) Intn(n int) int {
	return int(f) % n
}

func TestNextSeed(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(1), NextSeed(fixed(0)))
	a.Equal(int64(8), NextSeed(fixed(7)))
	a.Greater(NextSeed(Crypto{}), int64(0))
}
